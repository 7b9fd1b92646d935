// Package middleware HTTP middleware сервиса
package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
)

// HeaderClientID заголовок с идентификатором аутентифицированного клиента.
// Проставляется API gateway после проверки токена
const HeaderClientID = "X-Client-ID"

const msgMissingClientID = "отсутствует идентификатор клиента"

type contextKey string

const clientIDKey contextKey = "clientID"

// Auth проверяет наличие X-Client-ID и кладет его в контекст запроса.
// Запросы без корректного заголовка отклоняются с 401
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientIDStr := r.Header.Get(HeaderClientID)
		if clientIDStr == "" {
			handlers.RespondUnauthorized(w, msgMissingClientID)
			return
		}

		clientID, err := strconv.ParseInt(clientIDStr, 10, 64)
		if err != nil || clientID <= 0 {
			handlers.RespondUnauthorized(w, msgMissingClientID)
			return
		}

		ctx := context.WithValue(r.Context(), clientIDKey, clientID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetClientID извлекает ID клиента из контекста запроса
func GetClientID(ctx context.Context) (int64, bool) {
	clientID, ok := ctx.Value(clientIDKey).(int64)
	return clientID, ok
}
