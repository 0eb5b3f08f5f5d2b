package hotelcore

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/m04kA/HMS-PlanningService/internal/domain"
)

// envelope общий конверт ответов бэкенда. Ошибки приходят в двух формах:
// message (строка) и messages (массив строк) - разбираем обе.
type envelope struct {
	Success  bool            `json:"success"`
	Message  string          `json:"message"`
	Messages []string        `json:"messages"`
	Data     json.RawMessage `json:"data"`
}

// roomPayload комната с типом из /rooms/available и /rooms/with-room-type
type roomPayload struct {
	ID           int64  `json:"id"`
	RoomNumber   string `json:"room_number"`
	RoomTypeID   int64  `json:"room_type_id"`
	RoomTypeName string `json:"room_type_name"`
	Description  string `json:"description"`
	Status       int    `json:"status"`
	Floor        int    `json:"floor"`
}

func (p *roomPayload) toDomain() domain.Room {
	return domain.Room{
		ID:           p.ID,
		RoomNumber:   p.RoomNumber,
		RoomTypeID:   p.RoomTypeID,
		RoomTypeName: p.RoomTypeName,
		Description:  p.Description,
		Status:       domain.RoomStatus(p.Status),
		Floor:        p.Floor,
	}
}

// roomsData ответ /rooms/with-room-type
type roomsData struct {
	Rooms []roomPayload `json:"rooms"`
}

// ratePricePayload тариф из /rate_prices/by-room-type/{id}
type ratePricePayload struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	PricePerNight float64 `json:"price_per_night"`
	RoomTypeID    int64   `json:"room_type_id"`
}

func (p *ratePricePayload) toDomain() domain.RatePrice {
	return domain.RatePrice{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		PricePerNight: p.PricePerNight,
		RoomTypeID:    p.RoomTypeID,
	}
}

// ratePricesData ответ /rate_prices/by-room-type/{id}
type ratePricesData struct {
	RatePrices []ratePricePayload `json:"ratePrices"`
}

// bookingPayload денормализованная строка "бронь + гость + платеж" из /booking/
type bookingPayload struct {
	BookingID         int64   `json:"booking_id"`
	BookingStatus     int     `json:"booking_status"`
	BookingPrice      float64 `json:"booking_price"`
	CheckInDate       string  `json:"check_in_date"`
	CheckOutDate      string  `json:"check_out_date"`
	RoomID            int64   `json:"room_id"`
	RoomNumber        string  `json:"room_number"`
	RoomTypeID        int64   `json:"room_type_id"`
	RoomTypeName      string  `json:"room_type_name"`
	Floor             int     `json:"floor"`
	RatePriceID       int64   `json:"rate_price_id"`
	CustomerFirstName string  `json:"customer_firstname"`
	CustomerSurname   string  `json:"customer_surname"`
	PaymentStatus     *int    `json:"payment_status"`
}

func (p *bookingPayload) toDomain() (domain.Booking, error) {
	checkIn, err := parseDate(p.CheckInDate)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("booking id=%d: bad check_in_date: %w", p.BookingID, err)
	}

	checkOut, err := parseDate(p.CheckOutDate)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("booking id=%d: bad check_out_date: %w", p.BookingID, err)
	}

	var paymentStatus *domain.PaymentStatus
	if p.PaymentStatus != nil {
		s := domain.PaymentStatus(*p.PaymentStatus)
		paymentStatus = &s
	}

	return domain.Booking{
		ID:             p.BookingID,
		RoomID:         p.RoomID,
		RoomNumber:     p.RoomNumber,
		RoomTypeID:     p.RoomTypeID,
		RoomTypeName:   p.RoomTypeName,
		Floor:          p.Floor,
		GuestFirstName: p.CustomerFirstName,
		GuestSurname:   p.CustomerSurname,
		CheckInDate:    checkIn,
		CheckOutDate:   checkOut,
		Status:         domain.BookingStatus(p.BookingStatus),
		RatePriceID:    p.RatePriceID,
		TotalAmount:    p.BookingPrice,
		PaymentStatus:  paymentStatus,
	}, nil
}

// bookingsData ответ /booking/ с фильтром
type bookingsData struct {
	BookingCustomerPayments []bookingPayload `json:"booking_customer_payments"`
}

// parseDate принимает обе формы дат бэкенда: RFC3339 и YYYY-MM-DD
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}

	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %s", s)
	}

	return t, nil
}
