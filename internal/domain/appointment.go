package domain

import "time"

// Patient пациент в рамках одной записи (у одного родителя может быть
// несколько детей на один приём)
type Patient struct {
	Name string
	Age  int
}

// Appointment запись на приём
// Создается при отправке формы бронирования, после создания не изменяется
// и не удаляется (flow отмены отсутствует)
type Appointment struct {
	ID         string // UUID, стабилен для обоих бэкендов хранилища
	Date       time.Time
	SlotLabel  string
	ParentName string
	Phone      string
	Address    string
	Patients   []Patient

	// Token порядковый номер очереди в рамках даты
	// Выдается хранилищем атомарно вместе с резервированием места в слоте
	Token int64

	CreatedAt time.Time
}

// PatientCount возвращает количество пациентов в записи
func (a *Appointment) PatientCount() int {
	return len(a.Patients)
}

// IsForDate возвращает true, если запись относится к указанной дате
func (a *Appointment) IsForDate(date time.Time) bool {
	y1, m1, d1 := a.Date.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
