package calendar

import "time"

// DateCell одна колонка календарной оси дашборда
type DateCell struct {
	Date  time.Time // Полночь дня в таймзоне календаря
	Label string    // Локализованное название дня недели, например "Monday"
}

// Axis генерирует непрерывную ось календарных дат фиксированной длины,
// привязанную к "сегодня": первые daysBefore ячеек лежат в прошлом.
// Ось пересчитывается на каждый запрос и нигде не хранится.
func (c *Calendar) Axis(now time.Time, daysBefore, length int) []DateCell {
	if length <= 0 {
		return []DateCell{}
	}

	start := c.AddDays(now, -daysBefore)

	cells := make([]DateCell, length)
	for i := 0; i < length; i++ {
		date := c.AddDays(start, i)
		cells[i] = DateCell{
			Date:  date,
			Label: date.Weekday().String(),
		}
	}

	return cells
}

// TodayIndex возвращает индекс колонки "сегодня" на оси или -1,
// если текущий день в ось не попадает
func (c *Calendar) TodayIndex(axis []DateCell, now time.Time) int {
	for i, cell := range axis {
		if c.SameDay(cell.Date, now) {
			return i
		}
	}
	return -1
}

// IndexOf возвращает индекс дня date на оси или -1, если день вне окна
func (c *Calendar) IndexOf(axis []DateCell, date time.Time) int {
	for i, cell := range axis {
		if c.SameDay(cell.Date, date) {
			return i
		}
	}
	return -1
}
