package domain

// Default dashboard axis shape: 13 days anchored two days before today
const (
	DefaultAxisDaysBefore = 2
	DefaultAxisLength     = 13
)

// DefaultTimezone таймзона всех вычислений границ дня.
// Единая зона обязательна: ось дат, тест пересечения и подсветка "сегодня"
// должны сходиться на одних и тех же границах суток.
const DefaultTimezone = "Asia/Bangkok"

// Business validation constants
const (
	MinStayNights = 1
	MaxStayNights = 365
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
