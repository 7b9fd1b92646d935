package dbmetrics

import "context"

// ctxKey тип ключа для хранения транзакции в context
type ctxKey struct{}

// txKey ключ активной транзакции
var txKey ctxKey

// WithExecutor кладет активную транзакцию в context
// Репозитории, получившие такой context, выполняют запросы внутри транзакции
func WithExecutor(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetExecutor возвращает транзакцию из context, если она там есть,
// иначе возвращает fallback (обычное соединение репозитория)
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txKey).(TxExecutor); ok {
		return tx
	}
	return fallback
}

// IsInTransaction возвращает true, если в context есть активная транзакция
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txKey).(TxExecutor)
	return ok
}
