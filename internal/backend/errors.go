package backend

import "errors"

// Ошибки клиента бэкенда. HTTP-статусы апстрима маппятся в сентинелы в
// одной точке (см. statusError), хендлеры сравнивают только через errors.Is.
var (
	// ErrUnauthenticated — 401: токен отсутствует, просрочен или отозван.
	// Поверхность клиента в ответ уничтожает сессию и отправляет на логин.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrPermissionDenied — 403: операция над чужим постом.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrNotFound — 404: пост/пользователь не найден (в т.ч. устаревший id).
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists — конфликт уникальности (например, дубликат тега).
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidArgument — 400/422: бэкенд отверг данные запроса.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnavailable — транспортная ошибка или 5xx: бэкенд недоступен.
	ErrUnavailable = errors.New("backend unavailable")
)
