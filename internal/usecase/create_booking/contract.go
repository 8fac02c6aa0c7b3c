package create_booking

import (
	"context"
	"time"

	"github.com/sirisampada/SSCC-BookingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей на приём
type AppointmentRepository interface {
	// GetByDate получает все записи на конкретную дату
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)

	// ReserveSlot атомарно резервирует место в слоте и выдаёт номер очереди
	// Возвращает ErrSlotFull хранилища, когда мест не осталось
	ReserveSlot(ctx context.Context, date time.Time, slotLabel string, capacity int) (int64, error)

	// ReleaseSlot возвращает место, занятое ReserveSlot (компенсация при
	// неудачной вставке записи)
	ReleaseSlot(ctx context.Context, date time.Time, slotLabel string) error

	// Create сохраняет новую запись
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

// TransactionManager интерфейс для управления транзакциями
// Для PostgreSQL резервирование и вставка выполняются в сериализуемой
// транзакции; для MongoDB используется passthrough-реализация, так как
// атомарность обеспечивает условная запись в хранилище
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
