package domain

// RoomStatus represents the operational status of a room
type RoomStatus int

const (
	RoomAvailable RoomStatus = iota + 1
	RoomOccupied
	RoomUnderMaintenance
)

// Room комната вместе с названием её типа, как отдает бэкенд
// в /rooms/with-room-type и /rooms/available
type Room struct {
	ID           int64
	RoomNumber   string
	RoomTypeID   int64
	RoomTypeName string
	Description  string
	Status       RoomStatus
	Floor        int
}
