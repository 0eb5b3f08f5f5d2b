package get_available_rooms

import (
	"time"

	"github.com/m04kA/HMS-PlanningService/internal/domain"
)

// Request модель запроса свободных комнат на диапазон дат
type Request struct {
	CheckInDate  time.Time // Дата заезда (включается в проживание)
	CheckOutDate time.Time // Дата выезда (в проживание не включается)
}

// Response модель ответа со списком свободных комнат.
// Пустой список Rooms - корректный результат "нет свободных комнат",
// он никогда не подменяется ошибкой и наоборот.
type Response struct {
	CheckInDate  time.Time
	CheckOutDate time.Time
	Nights       int
	Rooms        []domain.Room
}
