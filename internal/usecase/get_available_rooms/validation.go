package get_available_rooms

import (
	"fmt"
	"time"

	"github.com/m04kA/HMS-PlanningService/pkg/calendar"
)

// validateRequest валидирует диапазон дат запроса доступности
func validateRequest(req *Request, cal *calendar.Calendar, now time.Time) error {
	if req.CheckInDate.IsZero() {
		return fmt.Errorf("%w: check-in date is required", ErrInvalidInput)
	}

	if req.CheckOutDate.IsZero() {
		return fmt.Errorf("%w: check-out date is required", ErrInvalidInput)
	}

	// Выезд строго позже заезда, минимум одна ночь
	if !cal.BeforeDay(req.CheckInDate, req.CheckOutDate) {
		return ErrInvalidRange
	}

	// Бронирования в прошлом не создаются
	if cal.BeforeDay(req.CheckInDate, now) {
		return ErrPastCheckIn
	}

	return nil
}
