package quote_stay

import "time"

// Request модель запроса расчета проживания. Задается либо дата выезда,
// либо число ночей - ровно одно из двух:
//   - изменение числа ночей пересчитывает дату выезда, затем стоимость;
//   - изменение даты выезда пересчитывает число ночей, выбор тарифа
//     при этом не трогается.
type Request struct {
	CheckInDate  time.Time
	CheckOutDate *time.Time
	Nights       *int
	RoomTypeID   int64
	RatePriceID  int64
}

// Response модель ответа с производными значениями проживания
type Response struct {
	CheckInDate   time.Time
	CheckOutDate  time.Time
	Nights        int
	RatePriceID   int64
	RatePriceName string
	RatePerNight  float64
	TotalAmount   float64
}
