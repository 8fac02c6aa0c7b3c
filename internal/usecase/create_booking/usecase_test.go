package create_booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirisampada/SSCC-BookingService/internal/domain"
	appointmentRepo "github.com/sirisampada/SSCC-BookingService/internal/infra/storage/appointment"
	"github.com/sirisampada/SSCC-BookingService/pkg/txmanager"
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

// memoryRepo потокобезопасный репозиторий в памяти, резервирование
// атомарно под мьютексом - как условная запись в реальном хранилище
type memoryRepo struct {
	mu           sync.Mutex
	appointments []*domain.Appointment
	slots        map[string]int
	nextToken    int64
	createErr    error
	released     int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{slots: make(map[string]int)}
}

func (r *memoryRepo) GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*domain.Appointment, 0, len(r.appointments))
	for _, appt := range r.appointments {
		if appt.IsForDate(date) {
			result = append(result, appt)
		}
	}
	return result, nil
}

func (r *memoryRepo) ReserveSlot(ctx context.Context, date time.Time, slotLabel string, capacity int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.slots[slotLabel] >= capacity {
		return 0, appointmentRepo.ErrSlotFull
	}
	r.slots[slotLabel]++
	r.nextToken++
	return r.nextToken, nil
}

func (r *memoryRepo) ReleaseSlot(ctx context.Context, date time.Time, slotLabel string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.slots[slotLabel]--
	r.released++
	return nil
}

func (r *memoryRepo) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.createErr != nil {
		return nil, r.createErr
	}
	appt.CreatedAt = time.Now().UTC()
	r.appointments = append(r.appointments, appt)
	return appt, nil
}

func testDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testAt(y int, m time.Month, d, hour, minute int) time.Time {
	return time.Date(y, m, d, hour, minute, 0, 0, time.UTC)
}

func validRequest() *Request {
	return &Request{
		ParentName: "Ramesh Kumar",
		Phone:      "+91 98765 43210",
		Address:    "Ashok Nagar, Mandya",
		Patients:   []Patient{{Name: "Ananya", Age: 4}},
		Date:       testDate(2026, 3, 20),
		SlotLabel:  "6:00-6:30 PM",
	}
}

func newTestUseCase(repo AppointmentRepository, now time.Time) *UseCase {
	uc := NewUseCase(repo, txmanager.NewNoop(), domain.DefaultCapacityPerSlot, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

func TestExecute_Success(t *testing.T) {
	repo := newMemoryRepo()
	uc := newTestUseCase(repo, testAt(2026, 3, 15, 9, 0))

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, int64(1), resp.Token)
	assert.Equal(t, "6:00-6:30 PM", resp.SlotLabel)
	assert.False(t, resp.CreatedAt.IsZero())
	assert.Len(t, repo.appointments, 1)
}

func TestExecute_TokensAreMonotonic(t *testing.T) {
	repo := newMemoryRepo()
	uc := newTestUseCase(repo, testAt(2026, 3, 15, 9, 0))

	first, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	second, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, first.Token+1, second.Token)
}

func TestExecute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *Request)
		wantErr error
	}{
		{"empty parent name", func(r *Request) { r.ParentName = "  " }, ErrInvalidInput},
		{"empty phone", func(r *Request) { r.Phone = "" }, ErrInvalidInput},
		{"phone with letters", func(r *Request) { r.Phone = "98-ab-11" }, ErrInvalidInput},
		{"phone too short", func(r *Request) { r.Phone = "+1234" }, ErrInvalidInput},
		{"empty address", func(r *Request) { r.Address = "" }, ErrInvalidInput},
		{"no patients", func(r *Request) { r.Patients = nil }, ErrInvalidInput},
		{"too many patients", func(r *Request) {
			r.Patients = make([]Patient, 6)
			for i := range r.Patients {
				r.Patients[i] = Patient{Name: "Kid", Age: 5}
			}
		}, ErrInvalidInput},
		{"patient too old", func(r *Request) { r.Patients = []Patient{{Name: "Adult", Age: 19}} }, ErrInvalidInput},
		{"negative age", func(r *Request) { r.Patients = []Patient{{Name: "Kid", Age: -1}} }, ErrInvalidInput},
		{"empty slot", func(r *Request) { r.SlotLabel = "" }, ErrInvalidInput},
		{"unknown slot", func(r *Request) { r.SlotLabel = "10:00-10:30 AM" }, ErrUnknownSlot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemoryRepo()
			uc := newTestUseCase(repo, testAt(2026, 3, 15, 9, 0))

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, repo.appointments, "no partial writes on validation failure")
		})
	}
}

func TestExecute_PastDate(t *testing.T) {
	uc := newTestUseCase(newMemoryRepo(), testAt(2026, 3, 15, 9, 0))

	req := validRequest()
	req.Date = testDate(2026, 3, 14)

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_SlotAlreadyPassedToday(t *testing.T) {
	// В 18:00 слот "6:00-6:30 PM" начинается ровно сейчас и уже недоступен
	uc := newTestUseCase(newMemoryRepo(), testAt(2026, 3, 15, 18, 0))

	req := validRequest()
	req.Date = testDate(2026, 3, 15)

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrSlotAlreadyPassed)
}

func TestExecute_SameSlotTomorrowStillBookable(t *testing.T) {
	uc := newTestUseCase(newMemoryRepo(), testAt(2026, 3, 15, 18, 0))

	req := validRequest()
	req.Date = testDate(2026, 3, 16)

	_, err := uc.Execute(context.Background(), req)

	assert.NoError(t, err)
}

func TestExecute_SlotFull(t *testing.T) {
	repo := newMemoryRepo()
	repo.slots["6:00-6:30 PM"] = domain.DefaultCapacityPerSlot
	for i := 0; i < domain.DefaultCapacityPerSlot; i++ {
		repo.appointments = append(repo.appointments, &domain.Appointment{
			Date:      testDate(2026, 3, 20),
			SlotLabel: "6:00-6:30 PM",
		})
	}
	uc := newTestUseCase(repo, testAt(2026, 3, 15, 9, 0))

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_CreateFailureReleasesSlot(t *testing.T) {
	repo := newMemoryRepo()
	repo.createErr = errors.New("insert failed")
	uc := newTestUseCase(repo, testAt(2026, 3, 15, 9, 0))

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, 1, repo.released)
	assert.Equal(t, 0, repo.slots["6:00-6:30 PM"])
}

func TestExecute_ConcurrentLastSeat(t *testing.T) {
	// Два конкурентных запроса на последнее место: ровно один выигрывает
	repo := newMemoryRepo()
	repo.slots["6:00-6:30 PM"] = domain.DefaultCapacityPerSlot - 1
	for i := 0; i < domain.DefaultCapacityPerSlot-1; i++ {
		repo.appointments = append(repo.appointments, &domain.Appointment{
			Date:      testDate(2026, 3, 20),
			SlotLabel: "6:00-6:30 PM",
			Token:     int64(i + 1),
		})
	}
	repo.nextToken = int64(domain.DefaultCapacityPerSlot - 1)

	uc := newTestUseCase(repo, testAt(2026, 3, 15, 9, 0))

	var wg sync.WaitGroup
	results := make(chan error, 2)

	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), validRequest())
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, rejected int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrSlotNotAvailable):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, rejected)
	assert.Equal(t, domain.DefaultCapacityPerSlot, repo.slots["6:00-6:30 PM"])
}
