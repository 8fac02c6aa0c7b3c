package get_today_patients

import "time"

// Response модель ответа со списком пациентов на сегодня
type Response struct {
	Date     time.Time
	Patients []Patient
}

// Patient пациент из сегодняшних записей
// Разворачивается из записей: одна запись с несколькими детьми даёт
// несколько пациентов с общими номером очереди и слотом
type Patient struct {
	Name       string
	Age        int
	SlotLabel  string
	Token      int64
	ParentName string
}
