package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirisampada/SSCC-BookingService/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(y int, m time.Month, d, hour, minute int) time.Time {
	return time.Date(y, m, d, hour, minute, 0, 0, time.UTC)
}

func appointmentsFor(label string, n int) []*domain.Appointment {
	appts := make([]*domain.Appointment, 0, n)
	for i := 0; i < n; i++ {
		appts = append(appts, &domain.Appointment{SlotLabel: label})
	}
	return appts
}

func labels(slots []domain.Slot) []string {
	result := make([]string, 0, len(slots))
	for _, s := range slots {
		result = append(result, s.Label)
	}
	return result
}

func TestAvailableSlots_FutureDateReturnsFullSchedule(t *testing.T) {
	got := AvailableSlots(domain.DailySchedule, date(2026, 3, 20), at(2026, 3, 15, 12, 0), nil, 10)

	require.Len(t, got, len(domain.DailySchedule))
	assert.Equal(t, labels(domain.DailySchedule), labels(got))
}

func TestAvailableSlots_TodayFiltersByStrictAfter(t *testing.T) {
	// В 09:00 слот "9:00-9:30 AM" начинается ровно сейчас и исключается,
	// первый доступный - "9:30-10:00 AM"
	got := AvailableSlots(domain.DailySchedule, date(2026, 3, 15), at(2026, 3, 15, 9, 0), nil, 10)

	require.NotEmpty(t, got)
	assert.Equal(t, []string{
		"9:30-10:00 AM",
		"6:00-6:30 PM",
		"6:30-7:00 PM",
		"7:00-7:30 PM",
		"7:30-8:00 PM",
	}, labels(got))
}

func TestAvailableSlots_TodayAfterLastSlotReturnsEmpty(t *testing.T) {
	got := AvailableSlots(domain.DailySchedule, date(2026, 3, 15), at(2026, 3, 15, 20, 0), nil, 10)

	assert.Empty(t, got)
}

func TestAvailableSlots_CapacityBoundary(t *testing.T) {
	now := at(2026, 3, 10, 12, 0)
	futureDate := date(2026, 3, 20)

	// 9 записей из 10 - слот ещё доступен
	got := AvailableSlots(domain.DailySchedule, futureDate, now, appointmentsFor("8:00-8:30 AM", 9), 10)
	assert.Contains(t, labels(got), "8:00-8:30 AM")

	// Ровно 10 - слот пропадает, остальные не затронуты
	got = AvailableSlots(domain.DailySchedule, futureDate, now, appointmentsFor("8:00-8:30 AM", 10), 10)
	require.Len(t, got, len(domain.DailySchedule)-1)
	assert.NotContains(t, labels(got), "8:00-8:30 AM")
}

func TestAvailableSlots_ForeignLabelsIgnored(t *testing.T) {
	appts := []*domain.Appointment{
		{SlotLabel: "no-such-slot"},
		{SlotLabel: "11:00-11:30 AM"},
	}

	got := AvailableSlots(domain.DailySchedule, date(2026, 3, 20), at(2026, 3, 10, 12, 0), appts, 10)

	assert.Len(t, got, len(domain.DailySchedule))
}

func TestAvailableSlots_OrderIsStable(t *testing.T) {
	// Занятость не меняет порядок: оставшиеся слоты идут в порядке расписания
	appts := appointmentsFor("8:30-9:00 AM", 10)

	got := AvailableSlots(domain.DailySchedule, date(2026, 3, 20), at(2026, 3, 10, 12, 0), appts, 10)

	assert.Equal(t, []string{
		"8:00-8:30 AM",
		"9:00-9:30 AM",
		"9:30-10:00 AM",
		"6:00-6:30 PM",
		"6:30-7:00 PM",
		"7:00-7:30 PM",
		"7:30-8:00 PM",
	}, labels(got))
}

func TestAvailableSlots_Pure(t *testing.T) {
	appts := appointmentsFor("6:00-6:30 PM", 3)
	d := date(2026, 3, 15)
	now := at(2026, 3, 15, 9, 0)

	first := AvailableSlots(domain.DailySchedule, d, now, appts, 10)
	second := AvailableSlots(domain.DailySchedule, d, now, appts, 10)

	assert.Equal(t, first, second)
}

func TestAvailableSlots_MonotoneInAppointments(t *testing.T) {
	// Добавление записей может только сузить набор доступных слотов
	d := date(2026, 3, 20)
	now := at(2026, 3, 10, 12, 0)

	smaller := appointmentsFor("7:00-7:30 PM", 9)
	bigger := appointmentsFor("7:00-7:30 PM", 10)

	before := labels(AvailableSlots(domain.DailySchedule, d, now, smaller, 10))
	after := labels(AvailableSlots(domain.DailySchedule, d, now, bigger, 10))

	for _, label := range after {
		assert.Contains(t, before, label)
	}
}

func TestFilterPastSlots_OtherDayUntouched(t *testing.T) {
	// Фильтр по времени применяется только к сегодняшней дате
	got := filterPastSlots(domain.DailySchedule, date(2026, 3, 16), at(2026, 3, 15, 23, 59))

	assert.Len(t, got, len(domain.DailySchedule))
}

func TestIsDateInPast(t *testing.T) {
	now := at(2026, 3, 15, 9, 0)

	assert.True(t, isDateInPast(date(2026, 3, 14), now))
	assert.False(t, isDateInPast(date(2026, 3, 15), now))
	assert.False(t, isDateInPast(date(2026, 3, 16), now))
}
