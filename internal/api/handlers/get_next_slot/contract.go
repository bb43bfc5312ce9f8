package get_next_slot

import (
	"context"

	getNextSlot "github.com/d1mayak/CPB-AvailabilityService/internal/usecase/get_next_slot"
)

type GetNextSlotUseCase interface {
	Execute(ctx context.Context, req *getNextSlot.Request) (*getNextSlot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
