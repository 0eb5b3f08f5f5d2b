package get_occupancy_grid

import (
	"github.com/m04kA/HMS-PlanningService/internal/domain"
	getOccupancyGrid "github.com/m04kA/HMS-PlanningService/internal/usecase/get_occupancy_grid"
)

// OccupancyGridResponse HTTP response model сетки занятости
type OccupancyGridResponse struct {
	Dates      []DateColumn `json:"dates"`
	TodayIndex int          `json:"todayIndex"`
	Rows       []RoomRow    `json:"rows"`
}

// DateColumn колонка оси дат
type DateColumn struct {
	Date      string `json:"date"`
	DayOfWeek string `json:"dayOfWeek"`
}

// RoomRow строка сетки для одной комнаты
type RoomRow struct {
	RoomID       int64  `json:"roomId"`
	RoomNumber   string `json:"roomNumber"`
	RoomTypeName string `json:"roomTypeName"`
	Floor        int    `json:"floor"`
	Cells        []Cell `json:"cells"`
}

// Cell ячейка строки: пустая либо полоса бронирования на colspan колонок
type Cell struct {
	Colspan int          `json:"colspan"`
	Booking *BookingSpan `json:"booking,omitempty"`
}

// BookingSpan полоса бронирования с подписью гостя и бейджами статусов
type BookingSpan struct {
	BookingID     int64  `json:"bookingId"`
	GuestLabel    string `json:"guestLabel"`
	RoomLabel     string `json:"roomLabel"`
	Status        int    `json:"status"`
	StatusLabel   string `json:"statusLabel"`
	PaymentStatus *int   `json:"paymentStatus,omitempty"`
	PaymentLabel  string `json:"paymentLabel,omitempty"`
	CheckInDate   string `json:"checkInDate"`
	CheckOutDate  string `json:"checkOutDate"`
	EditPath      string `json:"editPath"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getOccupancyGrid.Response) *OccupancyGridResponse {
	dates := make([]DateColumn, len(resp.Axis))
	for i, cell := range resp.Axis {
		dates[i] = DateColumn{
			Date:      cell.Date.Format(domain.DateFormat),
			DayOfWeek: cell.Label,
		}
	}

	rows := make([]RoomRow, len(resp.Rows))
	for i, row := range resp.Rows {
		cells := make([]Cell, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = Cell{
				Colspan: cell.Colspan,
				Booking: fromBookingSpan(cell.Span),
			}
		}

		rows[i] = RoomRow{
			RoomID:       row.Room.ID,
			RoomNumber:   row.Room.RoomNumber,
			RoomTypeName: row.Room.RoomTypeName,
			Floor:        row.Room.Floor,
			Cells:        cells,
		}
	}

	return &OccupancyGridResponse{
		Dates:      dates,
		TodayIndex: resp.TodayIndex,
		Rows:       rows,
	}
}

func fromBookingSpan(span *getOccupancyGrid.BookingSpan) *BookingSpan {
	if span == nil {
		return nil
	}

	result := &BookingSpan{
		BookingID:    span.BookingID,
		GuestLabel:   span.GuestLabel,
		RoomLabel:    span.RoomLabel,
		Status:       int(span.Status),
		StatusLabel:  span.StatusLabel,
		PaymentLabel: span.PaymentStatusLabel,
		CheckInDate:  span.CheckInDate.Format(domain.DateFormat),
		CheckOutDate: span.CheckOutDate.Format(domain.DateFormat),
		EditPath:     span.EditPath,
	}

	if span.PaymentStatus != nil {
		status := int(*span.PaymentStatus)
		result.PaymentStatus = &status
	}

	return result
}
