package quote_stay

import (
	"fmt"

	"github.com/m04kA/HMS-PlanningService/internal/domain"
)

// validateRequest валидирует входные данные запроса расчета
func validateRequest(req *Request) error {
	if req.CheckInDate.IsZero() {
		return fmt.Errorf("%w: check-in date is required", ErrInvalidInput)
	}

	if req.CheckOutDate == nil && req.Nights == nil {
		return fmt.Errorf("%w: either check-out date or nights is required", ErrInvalidInput)
	}

	if req.CheckOutDate != nil && req.Nights != nil {
		return fmt.Errorf("%w: check-out date and nights are mutually exclusive", ErrInvalidInput)
	}

	if req.Nights != nil && (*req.Nights < domain.MinStayNights || *req.Nights > domain.MaxStayNights) {
		return fmt.Errorf("%w: nights must be between %d and %d",
			ErrInvalidInput, domain.MinStayNights, domain.MaxStayNights)
	}

	if req.RoomTypeID <= 0 {
		return fmt.Errorf("%w: roomTypeID must be positive", ErrInvalidInput)
	}

	if req.RatePriceID <= 0 {
		return fmt.Errorf("%w: ratePriceID must be positive", ErrInvalidInput)
	}

	return nil
}
