package appointment

import "errors"

var (
	// ErrSlotFull возвращается, когда в слоте не осталось свободных мест
	// Резервирование атомарно: два конкурентных запроса на последнее место
	// получат ровно один успех и один ErrSlotFull
	ErrSlotFull = errors.New("appointment.repository: slot is full")

	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения запроса к хранилищу
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")

	// ErrDecodeDocument возвращается при ошибке декодирования документа MongoDB
	ErrDecodeDocument = errors.New("appointment.repository: failed to decode document")
)
