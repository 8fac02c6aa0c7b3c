package create_prescription

import "time"

// Request модель запроса на сохранение назначения
type Request struct {
	PatientName string  // Имя пациента из сегодняшнего списка
	PatientAge  int     // Возраст пациента
	Disease     string  // Диагноз/состояние
	Medicine    string  // Назначенные препараты с дозировкой
	Notes       *string // Дополнительные заметки (опционально)
}

// Response модель ответа с сохраненным назначением
type Response struct {
	ID          string
	Date        time.Time
	PatientName string
	PatientAge  int
	Disease     string
	Medicine    string
	Notes       *string
	CreatedAt   time.Time
}
