package vehicle

import "errors"

var (
	// ErrVehicleNotFound возвращается, когда транспорт не найден
	ErrVehicleNotFound = errors.New("vehicle.repository: vehicle not found")

	// ErrDuplicateID возвращается при попытке вставить транспорт с уже занятым ID
	ErrDuplicateID = errors.New("vehicle.repository: duplicate vehicle id")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("vehicle.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("vehicle.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("vehicle.repository: failed to scan row")
)
