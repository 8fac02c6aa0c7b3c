package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных формы
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDate возвращается при некорректной дате записи (в том числе в прошлом)
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrUnknownSlot возвращается, когда метка слота не принадлежит расписанию
	ErrUnknownSlot = errors.New("create_booking: unknown slot")

	// ErrSlotAlreadyPassed возвращается при попытке записаться на сегодняшний
	// слот, начало которого уже не строго позже текущего времени
	ErrSlotAlreadyPassed = errors.New("create_booking: slot already passed")

	// ErrSlotNotAvailable возвращается, когда в выбранном слоте не осталось мест
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
