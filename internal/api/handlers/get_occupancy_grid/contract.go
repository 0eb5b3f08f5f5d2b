package get_occupancy_grid

import (
	"context"

	getOccupancyGrid "github.com/m04kA/HMS-PlanningService/internal/usecase/get_occupancy_grid"
)

type GetOccupancyGridUseCase interface {
	Execute(ctx context.Context) (*getOccupancyGrid.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
