package clientdirectory

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент не найден в справочнике
	ErrClientNotFound = errors.New("client not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("clientdirectory client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("clientdirectory client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что ClientDirectory недоступен и запись создается без
	// денормализованного имени клиента
	ErrServiceDegraded = errors.New("clientdirectory unavailable: graceful degradation applied")
)
