package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirisampada/SSCC-BookingService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (r *fakeAppointmentRepo) GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	return r.appointments, r.err
}

func TestGetByDate_SortsByScheduleThenToken(t *testing.T) {
	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		{SlotLabel: "6:00-6:30 PM", Token: 3},
		{SlotLabel: "8:00-8:30 AM", Token: 5},
		{SlotLabel: "6:00-6:30 PM", Token: 1},
		{SlotLabel: "8:00-8:30 AM", Token: 2},
	}}
	svc := NewService(repo, nopLogger{})

	got, err := svc.GetByDate(context.Background(), time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	require.Len(t, got, 4)

	// Сначала утренние слоты в порядке расписания, внутри слота по номеру очереди
	assert.Equal(t, int64(2), got[0].Token)
	assert.Equal(t, int64(5), got[1].Token)
	assert.Equal(t, int64(1), got[2].Token)
	assert.Equal(t, int64(3), got[3].Token)
}

func TestGetByDate_ForeignLabelsLast(t *testing.T) {
	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		{SlotLabel: "legacy-slot", Token: 1},
		{SlotLabel: "7:30-8:00 PM", Token: 2},
	}}
	svc := NewService(repo, nopLogger{})

	got, err := svc.GetByDate(context.Background(), time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "7:30-8:00 PM", got[0].SlotLabel)
	assert.Equal(t, "legacy-slot", got[1].SlotLabel)
}

func TestGetByDate_ZeroDate(t *testing.T) {
	svc := NewService(&fakeAppointmentRepo{}, nopLogger{})

	_, err := svc.GetByDate(context.Background(), time.Time{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByDate_RepositoryError(t *testing.T) {
	repo := &fakeAppointmentRepo{err: errors.New("connection refused")}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetByDate(context.Background(), time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))

	assert.ErrorIs(t, err, ErrInternal)
}
