package get_available_slots

import (
	"time"

	"github.com/sirisampada/SSCC-BookingService/internal/domain"
	"github.com/sirisampada/SSCC-BookingService/pkg/types"
)

// AvailableSlots возвращает подмножество дневного расписания, доступное для записи
//
// Алгоритм:
//  1. Берём фиксированное расписание в его порядке
//  2. Если дата - сегодня, убираем слоты, начало которых не СТРОГО позже
//     текущего времени (слот, начинающийся ровно сейчас, исключается)
//  3. Считаем записи по меткам оставшихся слотов; записи с метками вне
//     оставшегося расписания молча игнорируются
//  4. Оставляем слоты, в которых занято строго меньше capacityPerSlot
//
// Функция чистая: результат зависит только от аргументов
// Пустой результат - валидное состояние "на эту дату записаться нельзя"
func AvailableSlots(
	schedule []domain.Slot,
	date time.Time,
	now time.Time,
	appointments []*domain.Appointment,
	capacityPerSlot int,
) []domain.Slot {
	remaining := filterPastSlots(schedule, date, now)
	counts := countBySlot(appointments, remaining)

	available := make([]domain.Slot, 0, len(remaining))
	for _, slot := range remaining {
		if counts[slot.Label] < capacityPerSlot {
			available = append(available, slot)
		}
	}

	return available
}

// filterPastSlots убирает из расписания слоты, уже прошедшие к моменту now
// Для любой даты, кроме сегодняшней, фильтр не применяется
func filterPastSlots(schedule []domain.Slot, date, now time.Time) []domain.Slot {
	if !isSameDay(date, now) {
		return schedule
	}

	currentTime := types.NewTimeString(now)

	remaining := make([]domain.Slot, 0, len(schedule))
	for _, slot := range schedule {
		if slot.Start.IsAfter(currentTime) {
			remaining = append(remaining, slot)
		}
	}

	return remaining
}

// countBySlot считает записи по меткам слотов из slots
// Метки, не входящие в slots (например, слот прошёл, но запись на него
// была сделана раньше), не учитываются и ничего не блокируют
func countBySlot(appointments []*domain.Appointment, slots []domain.Slot) map[string]int {
	counts := make(map[string]int, len(slots))
	for _, slot := range slots {
		counts[slot.Label] = 0
	}

	for _, appt := range appointments {
		if _, ok := counts[appt.SlotLabel]; ok {
			counts[appt.SlotLabel]++
		}
	}

	return counts
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
