package get_today_patients

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

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time {
	return p.now
}

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
	requested    time.Time
}

func (r *fakeAppointmentRepo) GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	r.requested = date
	return r.appointments, r.err
}

func TestExecute_FlattensAndSortsByToken(t *testing.T) {
	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{
		{
			SlotLabel:  "6:00-6:30 PM",
			Token:      2,
			ParentName: "Suresh",
			Patients:   []domain.Patient{{Name: "Rahul", Age: 7}},
		},
		{
			SlotLabel:  "8:00-8:30 AM",
			Token:      1,
			ParentName: "Lakshmi",
			Patients: []domain.Patient{
				{Name: "Divya", Age: 3},
				{Name: "Arjun", Age: 6},
			},
		},
	}}

	now := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	uc := NewUseCase(repo, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Patients, 3)

	// Одна запись с двумя детьми дает двух пациентов с общим номером очереди
	assert.Equal(t, "Divya", resp.Patients[0].Name)
	assert.Equal(t, "Arjun", resp.Patients[1].Name)
	assert.Equal(t, int64(1), resp.Patients[0].Token)
	assert.Equal(t, int64(1), resp.Patients[1].Token)
	assert.Equal(t, "Lakshmi", resp.Patients[0].ParentName)

	assert.Equal(t, "Rahul", resp.Patients[2].Name)
	assert.Equal(t, int64(2), resp.Patients[2].Token)

	// Запрошена именно сегодняшняя дата
	assert.Equal(t, now, repo.requested)
}

func TestExecute_EmptyDay(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Empty(t, resp.Patients)
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := &fakeAppointmentRepo{err: errors.New("connection refused")}
	uc := NewUseCase(repo, nopLogger{})

	_, err := uc.Execute(context.Background())

	assert.ErrorIs(t, err, ErrInternal)
}
