package get_occupancy_grid

import "errors"

var (
	// ErrQueryFailed возвращается при сбое запроса комнат или бронирований.
	// Пустая сетка (нет комнат, нет бронирований) ошибкой не является.
	ErrQueryFailed = errors.New("occupancy grid query failed")

	// ErrSessionExpired возвращается, когда бэкенд ответил 401
	ErrSessionExpired = errors.New("session expired")

	// ErrSessionRequired возвращается, когда в контексте запроса нет сессии
	ErrSessionRequired = errors.New("session is required")
)
