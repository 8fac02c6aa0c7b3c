package create_prescription

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_prescription: invalid input data")

	// ErrPatientNotFound возвращается, когда пациента нет в сегодняшних записях
	ErrPatientNotFound = errors.New("create_prescription: patient is not in today's appointments")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_prescription: internal error")
)
