package quote_stay

import (
	"fmt"
	"time"

	"github.com/m04kA/HMS-PlanningService/internal/domain"
	quoteStay "github.com/m04kA/HMS-PlanningService/internal/usecase/quote_stay"
)

// QuoteStayRequest HTTP request model. Задается либо checkOutDate, либо
// nights - ровно одно из двух.
type QuoteStayRequest struct {
	CheckInDate  string  `json:"checkInDate"`
	CheckOutDate *string `json:"checkOutDate,omitempty"`
	Nights       *int    `json:"nights,omitempty"`
	RoomTypeID   int64   `json:"roomTypeId"`
	RatePriceID  int64   `json:"ratePriceId"`
}

// QuoteStayResponse HTTP response model с производными значениями проживания
type QuoteStayResponse struct {
	CheckInDate   string  `json:"checkInDate"`
	CheckOutDate  string  `json:"checkOutDate"`
	Nights        int     `json:"nights"`
	RatePriceID   int64   `json:"ratePriceId"`
	RatePriceName string  `json:"ratePriceName"`
	RatePerNight  float64 `json:"ratePerNight"`
	TotalAmount   float64 `json:"totalAmount"`
}

// ToUseCaseRequest создает запрос use case из HTTP-тела
func (r *QuoteStayRequest) ToUseCaseRequest() (*quoteStay.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckInDate)
	if err != nil {
		return nil, fmt.Errorf("invalid checkInDate: %w", err)
	}

	req := &quoteStay.Request{
		CheckInDate: checkIn,
		Nights:      r.Nights,
		RoomTypeID:  r.RoomTypeID,
		RatePriceID: r.RatePriceID,
	}

	if r.CheckOutDate != nil {
		checkOut, err := time.Parse(domain.DateFormat, *r.CheckOutDate)
		if err != nil {
			return nil, fmt.Errorf("invalid checkOutDate: %w", err)
		}
		req.CheckOutDate = &checkOut
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quoteStay.Response) *QuoteStayResponse {
	return &QuoteStayResponse{
		CheckInDate:   resp.CheckInDate.Format(domain.DateFormat),
		CheckOutDate:  resp.CheckOutDate.Format(domain.DateFormat),
		Nights:        resp.Nights,
		RatePriceID:   resp.RatePriceID,
		RatePriceName: resp.RatePriceName,
		RatePerNight:  resp.RatePerNight,
		TotalAmount:   resp.TotalAmount,
	}
}
