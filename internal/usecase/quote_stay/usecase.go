package quote_stay

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/HMS-PlanningService/internal/domain"
	"github.com/m04kA/HMS-PlanningService/internal/integrations/hotelcore"
	"github.com/m04kA/HMS-PlanningService/internal/session"
	"github.com/m04kA/HMS-PlanningService/internal/stay"
)

// UseCase use case расчета проживания: длительность в ночах, производная
// дата выезда и полная стоимость по выбранному тарифу. Общий для экранов
// создания и редактирования бронирования.
type UseCase struct {
	client HotelCoreClient
	calc   *stay.Calculator
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client HotelCoreClient, calc *stay.Calculator, logger Logger) *UseCase {
	return &UseCase{
		client: client,
		calc:   calc,
		logger: logger,
	}
}

// Execute выполняет расчет проживания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	sess, ok := session.FromContext(ctx)
	if !ok {
		return nil, ErrSessionRequired
	}

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("QuoteStay: validation failed: %v", err)
		return nil, err
	}

	// 2. Выводим производные значения дат.
	// Порядок фиксирован: число ночей сначала дает дату выезда и только
	// потом стоимость, иначе производные значения разъезжаются.
	var (
		checkOut time.Time
		nights   int
		err      error
	)

	switch {
	case req.Nights != nil:
		nights = *req.Nights
		checkOut, err = uc.calc.DeriveCheckout(req.CheckInDate, nights)
		if err != nil {
			uc.logger.Warn("QuoteStay: invalid nights=%d: %v", nights, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	default:
		checkOut = *req.CheckOutDate
		nights, err = uc.calc.Nights(req.CheckInDate, checkOut)
		if err != nil {
			uc.logger.Warn("QuoteStay: invalid date range: %v", err)
			return nil, ErrInvalidRange
		}
	}

	// 3. Получаем тарифы для типа комнаты.
	// Пустой список тарифов - пользовательская ситуация, не сбой запроса.
	rates, err := uc.client.GetRatePricesByRoomType(ctx, sess, req.RoomTypeID)
	if err != nil {
		if errors.Is(err, hotelcore.ErrSessionExpired) {
			uc.logger.Warn("QuoteStay: session expired")
			return nil, ErrSessionExpired
		}
		uc.logger.Error("QuoteStay: failed to get rate prices for room_type=%d: %v", req.RoomTypeID, err)
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}

	if len(rates) == 0 {
		uc.logger.Info("QuoteStay: no rate prices for room_type=%d", req.RoomTypeID)
		return nil, ErrNoRatePrices
	}

	// 4. Находим выбранный тариф
	var rate *domain.RatePrice
	for i := range rates {
		if rates[i].ID == req.RatePriceID {
			rate = &rates[i]
			break
		}
	}
	if rate == nil {
		uc.logger.Warn("QuoteStay: rate price id=%d not found for room_type=%d", req.RatePriceID, req.RoomTypeID)
		return nil, ErrRateNotFound
	}

	// 5. Считаем полную стоимость
	total, err := stay.TotalAmount(rate.PricePerNight, nights)
	if err != nil {
		uc.logger.Warn("QuoteStay: invalid amount inputs: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	uc.logger.Info("QuoteStay: nights=%d, rate=%.2f, total=%.2f for room_type=%d",
		nights, rate.PricePerNight, total, req.RoomTypeID)

	return &Response{
		CheckInDate:   uc.calc.Normalize(req.CheckInDate),
		CheckOutDate:  uc.calc.Normalize(checkOut),
		Nights:        nights,
		RatePriceID:   rate.ID,
		RatePriceName: rate.Name,
		RatePerNight:  rate.PricePerNight,
		TotalAmount:   total,
	}, nil
}
