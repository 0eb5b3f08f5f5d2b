package stay

import "errors"

var (
	// ErrInvalidRange возвращается, когда дата выезда не позже даты заезда
	ErrInvalidRange = errors.New("check-out date must be after check-in date")

	// ErrInvalidInput возвращается при отрицательном тарифе или длительности меньше одной ночи
	ErrInvalidInput = errors.New("invalid stay input")
)
