package get_occupancy_grid

import (
	"errors"
	"net/http"

	"github.com/m04kA/HMS-PlanningService/internal/api/handlers"
	getOccupancyGrid "github.com/m04kA/HMS-PlanningService/internal/usecase/get_occupancy_grid"
)

const (
	msgSessionExpired = "сессия истекла, войдите заново"
	msgQueryFailed    = "не удалось загрузить данные дашборда, попробуйте еще раз"
)

type Handler struct {
	useCase GetOccupancyGridUseCase
	logger  Logger
}

func NewHandler(useCase GetOccupancyGridUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/occupancy-grid
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, getOccupancyGrid.ErrSessionExpired),
			errors.Is(err, getOccupancyGrid.ErrSessionRequired):
			h.logger.Warn("GET /occupancy-grid - Session expired")
			handlers.RespondUnauthorized(w, msgSessionExpired)

		case errors.Is(err, getOccupancyGrid.ErrQueryFailed):
			h.logger.Error("GET /occupancy-grid - Query failed: %v", err)
			handlers.RespondBadGateway(w, msgQueryFailed)

		default:
			h.logger.Error("GET /occupancy-grid - Unexpected error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /occupancy-grid - %d rooms, %d date columns", len(response.Rows), len(response.Dates))
	handlers.RespondJSON(w, http.StatusOK, response)
}
