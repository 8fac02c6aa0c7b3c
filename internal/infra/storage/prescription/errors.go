package prescription

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("prescription.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения запроса к хранилищу
	ErrExecQuery = errors.New("prescription.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("prescription.repository: failed to scan row")

	// ErrDecodeDocument возвращается при ошибке декодирования документа MongoDB
	ErrDecodeDocument = errors.New("prescription.repository: failed to decode document")
)
