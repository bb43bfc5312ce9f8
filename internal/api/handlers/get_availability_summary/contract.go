package get_availability_summary

import (
	"context"

	getAvailabilitySummary "github.com/d1mayak/CPB-AvailabilityService/internal/usecase/get_availability_summary"
)

type GetAvailabilitySummaryUseCase interface {
	Execute(ctx context.Context, req *getAvailabilitySummary.Request) (*getAvailabilitySummary.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
