package calendar

import (
	"fmt"
	"math"
	"time"
)

// Calendar выполняет всю арифметику границ календарных дней в одной
// фиксированной таймзоне. Генерация оси дат, нормализация дат бронирований
// и подсветка "сегодня" обязаны использовать один и тот же экземпляр,
// иначе границы дня у них разойдутся.
type Calendar struct {
	loc *time.Location
}

// New создает календарь для указанной таймзоны (IANA, например "Asia/Bangkok")
func New(timezone string) (*Calendar, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("calendar: unknown timezone %q: %w", timezone, err)
	}
	return &Calendar{loc: loc}, nil
}

// Location возвращает таймзону календаря
func (c *Calendar) Location() *time.Location {
	return c.loc
}

// StartOfDay нормализует момент времени к полуночи его календарного дня
// Компонент времени суток при сравнении дат всегда отбрасывается
func (c *Calendar) StartOfDay(t time.Time) time.Time {
	t = t.In(c.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.loc)
}

// SameDay проверяет, что два момента относятся к одному календарному дню
func (c *Calendar) SameDay(a, b time.Time) bool {
	return c.StartOfDay(a).Equal(c.StartOfDay(b))
}

// BeforeDay проверяет, что день a строго раньше дня b
func (c *Calendar) BeforeDay(a, b time.Time) bool {
	return c.StartOfDay(a).Before(c.StartOfDay(b))
}

// DaysBetween возвращает число календарных дней между from и to.
// Оба момента нормализуются к полуночи, разница округляется вверх,
// чтобы день перехода на летнее время (23 часа) считался полным днём.
func (c *Calendar) DaysBetween(from, to time.Time) int {
	hours := c.StartOfDay(to).Sub(c.StartOfDay(from)).Hours()
	return int(math.Ceil(math.Abs(hours) / 24))
}

// AddDays возвращает полночь дня, отстоящего от t на days календарных дней
func (c *Calendar) AddDays(t time.Time, days int) time.Time {
	return c.StartOfDay(t).AddDate(0, 0, days)
}
