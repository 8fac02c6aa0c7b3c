package domain

import "github.com/sirisampada/SSCC-BookingService/pkg/types"

// Slot фиксированный слот дневного расписания клиники
// Label показывается пациенту и хранится в записи, Start используется
// для фильтрации прошедших слотов
type Slot struct {
	Label string
	Start types.TimeString
}

// DailySchedule фиксированное дневное расписание клиники:
// четыре утренних слота и четыре вечерних, по 30 минут
// Днём и в выходной клиника закрыта, порядок слотов стабилен для всех дат
var DailySchedule = []Slot{
	{Label: "8:00-8:30 AM", Start: types.MustTimeString("08:00")},
	{Label: "8:30-9:00 AM", Start: types.MustTimeString("08:30")},
	{Label: "9:00-9:30 AM", Start: types.MustTimeString("09:00")},
	{Label: "9:30-10:00 AM", Start: types.MustTimeString("09:30")},
	{Label: "6:00-6:30 PM", Start: types.MustTimeString("18:00")},
	{Label: "6:30-7:00 PM", Start: types.MustTimeString("18:30")},
	{Label: "7:00-7:30 PM", Start: types.MustTimeString("19:00")},
	{Label: "7:30-8:00 PM", Start: types.MustTimeString("19:30")},
}

// SlotByLabel возвращает слот расписания по его метке
func SlotByLabel(label string) (Slot, bool) {
	for _, slot := range DailySchedule {
		if slot.Label == label {
			return slot, true
		}
	}
	return Slot{}, false
}

// IsValidSlotLabel возвращает true, если метка принадлежит расписанию
func IsValidSlotLabel(label string) bool {
	_, ok := SlotByLabel(label)
	return ok
}
