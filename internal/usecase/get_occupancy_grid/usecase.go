package get_occupancy_grid

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/m04kA/HMS-PlanningService/internal/domain"
	"github.com/m04kA/HMS-PlanningService/internal/integrations/hotelcore"
	"github.com/m04kA/HMS-PlanningService/internal/session"
	"github.com/m04kA/HMS-PlanningService/pkg/calendar"
	"github.com/m04kA/HMS-PlanningService/pkg/ptr"
)

// fetchLimit размер страницы при загрузке комнат и бронирований для сетки
const fetchLimit = 100

// UseCase use case построения сетки занятости дашборда: ось дат
// фиксированной длины, строки-комнаты, полосы бронирований с colspan
type UseCase struct {
	client         HotelCoreClient
	cal            *calendar.Calendar
	axisDaysBefore int
	axisLength     int
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client HotelCoreClient, cal *calendar.Calendar, axisDaysBefore, axisLength int, logger Logger) *UseCase {
	return &UseCase{
		client:         client,
		cal:            cal,
		axisDaysBefore: axisDaysBefore,
		axisLength:     axisLength,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute строит сетку занятости.
// Ось генерируется заново на каждый запрос; комнаты и бронирования
// запрашиваются у бэкенда параллельно, окно бронирований совпадает с осью.
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	sess, ok := session.FromContext(ctx)
	if !ok {
		return nil, ErrSessionRequired
	}

	// 1. Генерируем ось дат, привязанную к "сегодня"
	now := uc.timeProvider.Now()
	axis := uc.cal.Axis(now, uc.axisDaysBefore, uc.axisLength)
	if len(axis) == 0 {
		return &Response{Axis: axis, TodayIndex: -1, Rows: []RoomRow{}}, nil
	}

	windowStart := axis[0].Date
	windowEnd := axis[len(axis)-1].Date

	uc.logger.Info("GetOccupancyGrid: window %s .. %s (%d days)",
		windowStart.Format(domain.DateFormat), windowEnd.Format(domain.DateFormat), len(axis))

	// 2. Параллельно запрашиваем комнаты и бронирования окна
	var (
		wg          sync.WaitGroup
		rooms       []domain.Room
		bookings    []domain.Booking
		roomsErr    error
		bookingsErr error
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		rooms, roomsErr = uc.client.ListRoomsWithRoomType(ctx, sess, 0, fetchLimit)
	}()

	go func() {
		defer wg.Done()
		filter := domain.BookingsFilter{
			CheckInDate:  ptr.Ptr(windowStart),
			CheckOutDate: ptr.Ptr(windowEnd),
			Limit:        fetchLimit,
		}
		bookings, bookingsErr = uc.client.ListBookings(ctx, sess, filter)
	}()

	wg.Wait()

	if err := firstError(roomsErr, bookingsErr); err != nil {
		if errors.Is(err, hotelcore.ErrSessionExpired) {
			uc.logger.Warn("GetOccupancyGrid: session expired")
			return nil, ErrSessionExpired
		}
		uc.logger.Error("GetOccupancyGrid: backend query failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}

	// 3. Раскладываем бронирования по строкам-комнатам
	rows := make([]RoomRow, len(rooms))
	for i, room := range rooms {
		rows[i] = RoomRow{
			Room:  room,
			Cells: layoutRow(uc.cal, axis, room, bookings),
		}
	}

	uc.logger.Info("GetOccupancyGrid: %d rooms, %d bookings laid out", len(rooms), len(bookings))

	return &Response{
		Axis:       axis,
		TodayIndex: uc.cal.TodayIndex(axis, now),
		Rows:       rows,
	}, nil
}

// firstError возвращает первую ненулевую ошибку, отдавая приоритет
// истекшей сессии - она требует жесткой отмены всей работы экрана
func firstError(errs ...error) error {
	for _, err := range errs {
		if errors.Is(err, hotelcore.ErrSessionExpired) {
			return err
		}
	}
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
