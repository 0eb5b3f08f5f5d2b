package quote_stay

import (
	"context"

	"github.com/m04kA/HMS-PlanningService/internal/domain"
	"github.com/m04kA/HMS-PlanningService/internal/session"
)

// HotelCoreClient интерфейс клиента бэкенда отельной системы
type HotelCoreClient interface {
	GetRatePricesByRoomType(ctx context.Context, sess *session.Session, roomTypeID int64) ([]domain.RatePrice, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
