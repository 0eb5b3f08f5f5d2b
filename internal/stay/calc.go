package stay

import (
	"fmt"
	"math"
	"time"

	"github.com/m04kA/HMS-PlanningService/pkg/calendar"
)

// Calculator чистая арифметика дат и цены проживания, общая для создания
// и редактирования бронирования. Все даты нормализуются к полуночи в
// таймзоне календаря, компонент времени суток на результат не влияет.
type Calculator struct {
	cal *calendar.Calendar
}

// NewCalculator создает калькулятор поверх общего календаря сервиса
func NewCalculator(cal *calendar.Calendar) *Calculator {
	return &Calculator{cal: cal}
}

// Normalize приводит дату к полуночи её календарного дня
func (c *Calculator) Normalize(t time.Time) time.Time {
	return c.cal.StartOfDay(t)
}

// Nights возвращает длительность проживания в ночах: число календарных
// дней между заездом и выездом. Минимальное проживание - одна ночь.
func (c *Calculator) Nights(checkIn, checkOut time.Time) (int, error) {
	if !c.cal.BeforeDay(checkIn, checkOut) {
		return 0, fmt.Errorf("%w: check-in=%s, check-out=%s",
			ErrInvalidRange,
			c.cal.StartOfDay(checkIn).Format("2006-01-02"),
			c.cal.StartOfDay(checkOut).Format("2006-01-02"))
	}

	return c.cal.DaysBetween(checkIn, checkOut), nil
}

// DeriveCheckout возвращает дату выезда для заезда checkIn и nights ночей
func (c *Calculator) DeriveCheckout(checkIn time.Time, nights int) (time.Time, error) {
	if nights < 1 {
		return time.Time{}, fmt.Errorf("%w: nights must be at least 1, got %d", ErrInvalidInput, nights)
	}

	return c.cal.AddDays(checkIn, nights), nil
}

// TotalAmount возвращает полную стоимость проживания: тариф за ночь,
// умноженный на число ночей, с округлением до двух знаков (валюта)
func TotalAmount(ratePerNight float64, nights int) (float64, error) {
	if nights < 1 {
		return 0, fmt.Errorf("%w: nights must be at least 1, got %d", ErrInvalidInput, nights)
	}

	if ratePerNight < 0 {
		return 0, fmt.Errorf("%w: rate per night must not be negative, got %.2f", ErrInvalidInput, ratePerNight)
	}

	return math.Round(ratePerNight*float64(nights)*100) / 100, nil
}
