package get_occupancy_grid

import (
	"context"
	"time"

	"github.com/m04kA/HMS-PlanningService/internal/domain"
	"github.com/m04kA/HMS-PlanningService/internal/session"
)

// HotelCoreClient интерфейс клиента бэкенда отельной системы
type HotelCoreClient interface {
	ListRoomsWithRoomType(ctx context.Context, sess *session.Session, skip, limit uint64) ([]domain.Room, error)
	ListBookings(ctx context.Context, sess *session.Session, filter domain.BookingsFilter) ([]domain.Booking, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
