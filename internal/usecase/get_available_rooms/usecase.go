package get_available_rooms

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HMS-PlanningService/internal/domain"
	"github.com/m04kA/HMS-PlanningService/internal/integrations/hotelcore"
	"github.com/m04kA/HMS-PlanningService/internal/session"
	"github.com/m04kA/HMS-PlanningService/pkg/calendar"
)

// UseCase use case запроса свободных комнат на диапазон дат
type UseCase struct {
	client       HotelCoreClient
	cal          *calendar.Calendar
	guard        *LatestGuard
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client HotelCoreClient, cal *calendar.Calendar, logger Logger) *UseCase {
	return &UseCase{
		client:       client,
		cal:          cal,
		guard:        NewLatestGuard(),
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет запрос доступности комнат.
// Поиск выполняется по полуинтервалу [checkIn, checkOut): день выезда
// проживанием не считается. Если за время ожидания ответа для этой же
// сессии начат запрос с более новым диапазоном, результат отбрасывается
// с ErrStaleResponse и не должен попадать на экран.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	sess, ok := session.FromContext(ctx)
	if !ok {
		return nil, ErrSessionRequired
	}

	uc.logger.Info("GetAvailableRooms: check_in=%s, check_out=%s",
		req.CheckInDate.Format(domain.DateFormat), req.CheckOutDate.Format(domain.DateFormat))

	// 1. Валидация диапазона дат
	now := uc.timeProvider.Now()
	if err := validateRequest(req, uc.cal, now); err != nil {
		uc.logger.Warn("GetAvailableRooms: validation failed: %v", err)
		return nil, err
	}

	// 2. Регистрируем запрос в guard - более ранние запросы этой сессии устаревают
	ticket := uc.guard.Begin(sess.Token)

	checkIn := uc.cal.StartOfDay(req.CheckInDate)
	checkOut := uc.cal.StartOfDay(req.CheckOutDate)

	// 3. Запрашиваем свободные комнаты у бэкенда
	rooms, err := uc.client.GetAvailableRooms(ctx, sess, checkIn, checkOut)
	if err != nil {
		if errors.Is(err, hotelcore.ErrSessionExpired) {
			// Сессия закончилась - её билеты больше не понадобятся
			uc.guard.Forget(sess.Token)
			uc.logger.Warn("GetAvailableRooms: session expired")
			return nil, ErrSessionExpired
		}
		uc.logger.Error("GetAvailableRooms: backend query failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}

	// 4. Применяем только результат самого нового запроса
	if !uc.guard.IsLatest(sess.Token, ticket) {
		uc.logger.Info("GetAvailableRooms: discarding stale response for check_in=%s, check_out=%s",
			checkIn.Format(domain.DateFormat), checkOut.Format(domain.DateFormat))
		return nil, ErrStaleResponse
	}

	uc.logger.Info("GetAvailableRooms: %d rooms available for check_in=%s, check_out=%s",
		len(rooms), checkIn.Format(domain.DateFormat), checkOut.Format(domain.DateFormat))

	return &Response{
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Nights:       uc.cal.DaysBetween(checkIn, checkOut),
		Rooms:        rooms,
	}, nil
}
