package get_available_rooms

import (
	"errors"
	"net/http"

	"github.com/m04kA/HMS-PlanningService/internal/api/handlers"
	getAvailableRooms "github.com/m04kA/HMS-PlanningService/internal/usecase/get_available_rooms"
)

const (
	msgMissingDates    = "параметры check_in_date и check_out_date обязательны"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange    = "дата выезда должна быть позже даты заезда"
	msgPastCheckIn     = "дата заезда не может быть в прошлом"
	msgSessionExpired  = "сессия истекла, войдите заново"
	msgStaleSuperseded = "запрос вытеснен более новым диапазоном дат"
	msgQueryFailed     = "не удалось получить свободные комнаты, попробуйте еще раз"
)

type Handler struct {
	useCase GetAvailableRoomsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableRoomsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/available
// Query params: check_in_date (required, YYYY-MM-DD), check_out_date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	checkInStr := r.URL.Query().Get("check_in_date")
	checkOutStr := r.URL.Query().Get("check_out_date")

	if checkInStr == "" || checkOutStr == "" {
		h.logger.Warn("GET /rooms/available - Missing date params")
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	useCaseReq, err := ToUseCaseRequest(checkInStr, checkOutStr)
	if err != nil {
		h.logger.Warn("GET /rooms/available - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableRooms.ErrInvalidRange):
			h.logger.Warn("GET /rooms/available - Invalid range: check_in=%s, check_out=%s", checkInStr, checkOutStr)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, getAvailableRooms.ErrPastCheckIn):
			h.logger.Warn("GET /rooms/available - Past check-in: check_in=%s", checkInStr)
			handlers.RespondBadRequest(w, msgPastCheckIn)

		case errors.Is(err, getAvailableRooms.ErrInvalidInput):
			h.logger.Warn("GET /rooms/available - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailableRooms.ErrStaleResponse):
			// Не пользовательская ошибка: результат устарел и отброшен,
			// экран уже ждет ответ более нового запроса
			h.logger.Info("GET /rooms/available - Stale response discarded: check_in=%s, check_out=%s",
				checkInStr, checkOutStr)
			handlers.RespondConflict(w, msgStaleSuperseded)

		case errors.Is(err, getAvailableRooms.ErrSessionExpired),
			errors.Is(err, getAvailableRooms.ErrSessionRequired):
			h.logger.Warn("GET /rooms/available - Session expired")
			handlers.RespondUnauthorized(w, msgSessionExpired)

		case errors.Is(err, getAvailableRooms.ErrQueryFailed):
			// Сбой запроса к бэкенду - это НЕ "нет свободных комнат":
			// пустой список уходит ниже с кодом 200
			h.logger.Error("GET /rooms/available - Query failed: %v", err)
			handlers.RespondBadGateway(w, msgQueryFailed)

		default:
			h.logger.Error("GET /rooms/available - Unexpected error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /rooms/available - %d rooms for check_in=%s, check_out=%s",
		len(response.Rooms), checkInStr, checkOutStr)
	handlers.RespondJSON(w, http.StatusOK, response)
}
