package quote_stay

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidRange возвращается, когда дата выезда не позже даты заезда
	ErrInvalidRange = errors.New("check-out date must be after check-in date")

	// ErrNoRatePrices возвращается, когда для типа комнаты нет ни одного тарифа.
	// Это пользовательская ситуация (выберите другую комнату), не сбой запроса.
	ErrNoRatePrices = errors.New("no rate prices found for this room type")

	// ErrRateNotFound возвращается, когда выбранный тариф не принадлежит типу комнаты
	ErrRateNotFound = errors.New("rate price not found for this room type")

	// ErrQueryFailed возвращается при сбое запроса тарифов к бэкенду
	ErrQueryFailed = errors.New("rate price query failed")

	// ErrSessionExpired возвращается, когда бэкенд ответил 401
	ErrSessionExpired = errors.New("session expired")

	// ErrSessionRequired возвращается, когда в контексте запроса нет сессии
	ErrSessionRequired = errors.New("session is required")
)
