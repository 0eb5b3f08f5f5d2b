package quote_stay

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m04kA/HMS-PlanningService/internal/api/handlers"
	quoteStay "github.com/m04kA/HMS-PlanningService/internal/usecase/quote_stay"
)

const (
	msgInvalidBody    = "некорректное тело запроса"
	msgInvalidInput   = "некорректные параметры расчета проживания"
	msgInvalidRange   = "дата выезда должна быть позже даты заезда"
	msgNoRatePrices   = "для этого типа комнаты нет тарифов"
	msgRateNotFound   = "выбранный тариф не найден для этого типа комнаты"
	msgSessionExpired = "сессия истекла, войдите заново"
	msgQueryFailed    = "не удалось получить тарифы, попробуйте еще раз"
)

type Handler struct {
	useCase QuoteStayUseCase
	logger  Logger
}

func NewHandler(useCase QuoteStayUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/stay-quotes
// Body: checkInDate (required), checkOutDate XOR nights, roomTypeId, ratePriceId
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var httpReq QuoteStayRequest
	if err := json.NewDecoder(r.Body).Decode(&httpReq); err != nil {
		h.logger.Warn("POST /stay-quotes - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	useCaseReq, err := httpReq.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /stay-quotes - Invalid dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, quoteStay.ErrInvalidRange):
			h.logger.Warn("POST /stay-quotes - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, quoteStay.ErrInvalidInput):
			h.logger.Warn("POST /stay-quotes - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, quoteStay.ErrNoRatePrices):
			h.logger.Info("POST /stay-quotes - No rate prices: room_type=%d", httpReq.RoomTypeID)
			handlers.RespondNotFound(w, msgNoRatePrices)

		case errors.Is(err, quoteStay.ErrRateNotFound):
			h.logger.Warn("POST /stay-quotes - Rate not found: rate_price=%d, room_type=%d",
				httpReq.RatePriceID, httpReq.RoomTypeID)
			handlers.RespondNotFound(w, msgRateNotFound)

		case errors.Is(err, quoteStay.ErrSessionExpired),
			errors.Is(err, quoteStay.ErrSessionRequired):
			h.logger.Warn("POST /stay-quotes - Session expired")
			handlers.RespondUnauthorized(w, msgSessionExpired)

		case errors.Is(err, quoteStay.ErrQueryFailed):
			h.logger.Error("POST /stay-quotes - Query failed: %v", err)
			handlers.RespondBadGateway(w, msgQueryFailed)

		default:
			h.logger.Error("POST /stay-quotes - Unexpected error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /stay-quotes - nights=%d, total=%.2f", response.Nights, response.TotalAmount)
	handlers.RespondJSON(w, http.StatusOK, response)
}
