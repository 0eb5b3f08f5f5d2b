package get_available_rooms

import (
	"time"

	"github.com/m04kA/HMS-PlanningService/internal/domain"
	getAvailableRooms "github.com/m04kA/HMS-PlanningService/internal/usecase/get_available_rooms"
)

// AvailableRoomsResponse HTTP response model
type AvailableRoomsResponse struct {
	CheckInDate  string          `json:"checkInDate"`
	CheckOutDate string          `json:"checkOutDate"`
	Nights       int             `json:"nights"`
	Rooms        []AvailableRoom `json:"rooms"`
}

// AvailableRoom модель свободной комнаты
type AvailableRoom struct {
	ID           int64  `json:"id"`
	RoomNumber   string `json:"roomNumber"`
	RoomTypeID   int64  `json:"roomTypeId"`
	RoomTypeName string `json:"roomTypeName"`
	Floor        int    `json:"floor"`
	Description  string `json:"description,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableRooms.Response) *AvailableRoomsResponse {
	rooms := make([]AvailableRoom, len(resp.Rooms))
	for i, room := range resp.Rooms {
		rooms[i] = AvailableRoom{
			ID:           room.ID,
			RoomNumber:   room.RoomNumber,
			RoomTypeID:   room.RoomTypeID,
			RoomTypeName: room.RoomTypeName,
			Floor:        room.Floor,
			Description:  room.Description,
		}
	}

	return &AvailableRoomsResponse{
		CheckInDate:  resp.CheckInDate.Format(domain.DateFormat),
		CheckOutDate: resp.CheckOutDate.Format(domain.DateFormat),
		Nights:       resp.Nights,
		Rooms:        rooms,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(checkInStr, checkOutStr string) (*getAvailableRooms.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, checkInStr)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, checkOutStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableRooms.Request{
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
	}, nil
}
