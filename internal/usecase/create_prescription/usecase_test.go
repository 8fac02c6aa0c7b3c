package create_prescription

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirisampada/SSCC-BookingService/internal/domain"
	"github.com/sirisampada/SSCC-BookingService/pkg/ptr"
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
}

func (r *fakeAppointmentRepo) GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	return r.appointments, r.err
}

type fakePrescriptionRepo struct {
	created *domain.Prescription
	err     error
}

func (r *fakePrescriptionRepo) Create(ctx context.Context, p *domain.Prescription) (*domain.Prescription, error) {
	if r.err != nil {
		return nil, r.err
	}
	p.CreatedAt = time.Now().UTC()
	r.created = p
	return p, nil
}

func todayAppointments() []*domain.Appointment {
	return []*domain.Appointment{
		{
			SlotLabel: "8:00-8:30 AM",
			Token:     1,
			Patients:  []domain.Patient{{Name: "Ananya", Age: 4}},
		},
	}
}

func validRequest() *Request {
	return &Request{
		PatientName: "Ananya",
		PatientAge:  4,
		Disease:     "Viral fever",
		Medicine:    "Paracetamol syrup 5ml x 3 days",
	}
}

func newTestUseCase(prescriptions *fakePrescriptionRepo, appointments *fakeAppointmentRepo) *UseCase {
	uc := NewUseCase(prescriptions, appointments, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_Success(t *testing.T) {
	prescriptions := &fakePrescriptionRepo{}
	uc := newTestUseCase(prescriptions, &fakeAppointmentRepo{appointments: todayAppointments()})

	req := validRequest()
	req.Notes = ptr.Ptr("Review after 3 days")

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Ananya", resp.PatientName)
	require.NotNil(t, resp.Notes)
	assert.Equal(t, "Review after 3 days", *resp.Notes)
	assert.NotNil(t, prescriptions.created)
}

func TestExecute_PatientNotBookedToday(t *testing.T) {
	uc := newTestUseCase(&fakePrescriptionRepo{}, &fakeAppointmentRepo{appointments: todayAppointments()})

	// Совпадение только по имени недостаточно, возраст тоже должен совпасть
	req := validRequest()
	req.PatientAge = 5

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestExecute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"empty patient name", func(r *Request) { r.PatientName = " " }},
		{"age out of range", func(r *Request) { r.PatientAge = 19 }},
		{"empty disease", func(r *Request) { r.Disease = "" }},
		{"empty medicine", func(r *Request) { r.Medicine = "" }},
		{"disease too long", func(r *Request) { r.Disease = strings.Repeat("x", domain.MaxDiseaseLength+1) }},
		{"notes too long", func(r *Request) { r.Notes = ptr.Ptr(strings.Repeat("x", domain.MaxNotesLength+1)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakePrescriptionRepo{}, &fakeAppointmentRepo{appointments: todayAppointments()})

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_AppointmentRepoError(t *testing.T) {
	uc := newTestUseCase(&fakePrescriptionRepo{}, &fakeAppointmentRepo{err: errors.New("connection refused")})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_PrescriptionRepoError(t *testing.T) {
	prescriptions := &fakePrescriptionRepo{err: errors.New("insert failed")}
	uc := newTestUseCase(prescriptions, &fakeAppointmentRepo{appointments: todayAppointments()})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
}
