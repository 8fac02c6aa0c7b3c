package txmanager

import "context"

// Noop transaction manager без транзакций
// Используется с хранилищами, которые обеспечивают атомарность админиссии
// самостоятельно (условная запись в MongoDB), и в тестах
type Noop struct{}

// NewNoop создает passthrough transaction manager
func NewNoop() *Noop {
	return &Noop{}
}

// Do выполняет fn без транзакции
func (m *Noop) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// DoReadOnly выполняет fn без транзакции
func (m *Noop) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// DoSerializable выполняет fn без транзакции
func (m *Noop) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
