package get_available_rooms

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidRange возвращается, когда дата выезда не позже даты заезда
	ErrInvalidRange = errors.New("check-out date must be after check-in date")

	// ErrPastCheckIn возвращается при дате заезда в прошлом
	ErrPastCheckIn = errors.New("check-in date must not be in the past")

	// ErrQueryFailed возвращается при сбое запроса к бэкенду.
	// Не путать с пустым списком комнат: отсутствие свободных комнат -
	// успешный результат, этот сентинел означает транспортную или серверную ошибку.
	ErrQueryFailed = errors.New("availability query failed")

	// ErrStaleResponse внутренний сигнал: результат запроса устарел, потому что
	// для этой же сессии уже начат запрос с более новым диапазоном дат.
	// Пользователю не показывается, результат просто отбрасывается.
	ErrStaleResponse = errors.New("availability response superseded by a newer query")

	// ErrSessionExpired возвращается, когда бэкенд ответил 401
	ErrSessionExpired = errors.New("session expired")

	// ErrSessionRequired возвращается, когда в контексте запроса нет сессии
	ErrSessionRequired = errors.New("session is required")
)
