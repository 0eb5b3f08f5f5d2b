package domain

import (
	"fmt"
	"time"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus int

const (
	StatusPending BookingStatus = iota + 1
	StatusConfirmed
	StatusCheckedIn
	StatusCheckedOut
	StatusCanceled
	StatusCompleted
)

// Label returns the display text for a booking status
func (s BookingStatus) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusConfirmed:
		return "Confirmed"
	case StatusCheckedIn:
		return "Checked In"
	case StatusCheckedOut:
		return "Checked Out"
	case StatusCanceled:
		return "Canceled"
	case StatusCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// Booking транзиентная view-модель бронирования, собранная бэкендом из
// брони, гостя и платежа. Пересчитывается из ответа API при каждом запросе
// и нигде не сохраняется.
type Booking struct {
	ID           int64
	RoomID       int64
	RoomNumber   string
	RoomTypeID   int64
	RoomTypeName string
	Floor        int

	GuestFirstName string
	GuestSurname   string

	CheckInDate  time.Time
	CheckOutDate time.Time
	Status       BookingStatus

	RatePriceID  int64
	RatePerNight float64
	TotalAmount  float64

	PaymentStatus *PaymentStatus
}

// GuestLabel returns the short guest caption rendered on the grid,
// first name plus surname initial
func (b *Booking) GuestLabel() string {
	if b.GuestSurname == "" {
		return b.GuestFirstName
	}
	return fmt.Sprintf("%s %c.", b.GuestFirstName, []rune(b.GuestSurname)[0])
}

// EditPath returns the UI route for opening this booking in the edit screen
func (b *Booking) EditPath() string {
	return fmt.Sprintf("/booking/edit/%d", b.ID)
}

// BookingsFilter фильтр списка бронирований, передается бэкенду как query
// параметры. Поля-указатели опциональны, nil означает "без ограничения".
type BookingsFilter struct {
	CheckInDate   *time.Time
	CheckOutDate  *time.Time
	Status        *BookingStatus
	PaymentStatus *PaymentStatus
	Skip          uint64
	Limit         uint64
}
