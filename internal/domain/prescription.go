package domain

import "time"

// Prescription назначение врача пациенту из списка записанных на сегодня
type Prescription struct {
	ID          string // UUID
	Date        time.Time
	PatientName string
	PatientAge  int
	Disease     string
	Medicine    string
	Notes       *string
	CreatedAt   time.Time
}
