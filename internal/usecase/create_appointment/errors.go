package create_appointment

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент не найден в справочнике
	ErrClientNotFound = errors.New("create_appointment: client not found")

	// ErrProfessionalNotFound возвращается, когда профессионал не найден
	ErrProfessionalNotFound = errors.New("create_appointment: professional not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrSlotNoLongerAvailable возвращается, когда выбранный слот отсутствует
	// в пересчитанном списке: снимок клиента устарел. Проверка выполняется
	// до открытия транзакции, запись в БД не производится
	ErrSlotNoLongerAvailable = errors.New("create_appointment: slot is no longer available")

	// ErrSlotJustTaken возвращается при нарушении ограничения уникальности:
	// слот прошел пересчет, но конкурирующая запись успела закоммититься раньше
	ErrSlotJustTaken = errors.New("create_appointment: slot was just taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
