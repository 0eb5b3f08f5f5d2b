package get_occupancy_grid

import (
	"time"

	"github.com/m04kA/HMS-PlanningService/internal/domain"
	"github.com/m04kA/HMS-PlanningService/pkg/calendar"
)

// layoutRow раскладывает бронирования одной комнаты по оси дат.
// Ось обходится слева направо со счетчиком пропусков: колонки, накрытые
// уже выданной полосой, пропускаются. Инвариант строки: сумма Colspan
// по всем ячейкам равна длине оси - без дыр и двойного счета.
func layoutRow(cal *calendar.Calendar, axis []calendar.DateCell, room domain.Room, bookings []domain.Booking) []Cell {
	cells := make([]Cell, 0, len(axis))
	skip := 0

	for i, dateCell := range axis {
		if skip > 0 {
			skip--
			continue
		}

		booking := findBookingAt(cal, bookings, room.ID, dateCell.Date)
		if booking == nil {
			cells = append(cells, Cell{Colspan: 1})
			continue
		}

		startIdx, endIdx := spanBounds(cal, axis, booking)

		// Колонки левее текущей уже выданы, назад полоса не растет
		if startIdx < i {
			startIdx = i
		}

		colspan := endIdx - startIdx + 1
		skip = colspan - 1

		cells = append(cells, Cell{
			Colspan: colspan,
			Span:    newBookingSpan(booking),
		})
	}

	return cells
}

// findBookingAt ищет бронирование комнаты, накрывающее указанный день.
// Занятость считается по полуинтервалу [checkIn, checkOut): в день выезда
// гость уже выехал, комната свободна. Сравниваются только календарные дни.
// При пересечении бронирований (нарушение согласованности внешней системы)
// побеждает первое совпадение в списке.
func findBookingAt(cal *calendar.Calendar, bookings []domain.Booking, roomID int64, date time.Time) *domain.Booking {
	day := cal.StartOfDay(date)

	for i := range bookings {
		b := &bookings[i]
		if b.RoomID != roomID {
			continue
		}

		checkIn := cal.StartOfDay(b.CheckInDate)
		checkOut := cal.StartOfDay(b.CheckOutDate)

		if !day.Before(checkIn) && day.Before(checkOut) {
			return b
		}
	}

	return nil
}

// spanBounds возвращает индексы первой и последней занятой колонки полосы,
// ограниченные границами оси. Бронирование, начавшееся до окна или
// заканчивающееся после него, рисуется частичной полосой, а не теряется.
func spanBounds(cal *calendar.Calendar, axis []calendar.DateCell, b *domain.Booking) (int, int) {
	lastNight := cal.AddDays(b.CheckOutDate, -1)

	startIdx := cal.IndexOf(axis, b.CheckInDate)
	if startIdx < 0 {
		startIdx = 0
	}

	endIdx := cal.IndexOf(axis, lastNight)
	if endIdx < 0 {
		endIdx = len(axis) - 1
	}

	return startIdx, endIdx
}

func newBookingSpan(b *domain.Booking) *BookingSpan {
	span := &BookingSpan{
		BookingID:     b.ID,
		GuestLabel:    b.GuestLabel(),
		RoomLabel:     b.RoomNumber,
		StatusLabel:   b.Status.Label(),
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		CheckInDate:   b.CheckInDate,
		CheckOutDate:  b.CheckOutDate,
		EditPath:      b.EditPath(),
	}

	if b.PaymentStatus != nil {
		span.PaymentStatusLabel = b.PaymentStatus.Label()
	}

	return span
}
