package domain

// RatePrice тариф на ночь для типа комнаты
type RatePrice struct {
	ID            int64
	Name          string
	Description   string
	PricePerNight float64
	RoomTypeID    int64
}
