package get_occupancy_grid

import (
	"time"

	"github.com/m04kA/HMS-PlanningService/internal/domain"
	"github.com/m04kA/HMS-PlanningService/pkg/calendar"
)

// Response сетка занятости: ось дат, строки-комнаты и индекс колонки "сегодня".
// Вся сетка - производное значение, пересчитывается на каждый запрос.
type Response struct {
	Axis       []calendar.DateCell
	TodayIndex int // -1, если "сегодня" вне окна оси
	Rows       []RoomRow
}

// RoomRow строка сетки для одной комнаты
type RoomRow struct {
	Room  domain.Room
	Cells []Cell
}

// Cell ячейка строки: либо пустая (Span == nil, Colspan == 1), либо полоса
// бронирования шириной Colspan колонок. Колонки, накрытые полосой,
// отдельными ячейками не выдаются.
type Cell struct {
	Colspan int
	Span    *BookingSpan
}

// BookingSpan полоса бронирования на сетке с подписью гостя и бейджами статусов
type BookingSpan struct {
	BookingID          int64
	GuestLabel         string
	RoomLabel          string
	StatusLabel        string
	PaymentStatusLabel string
	Status             domain.BookingStatus
	PaymentStatus      *domain.PaymentStatus
	CheckInDate        time.Time
	CheckOutDate       time.Time
	EditPath           string
}
