package schedule

import "github.com/d1mayak/CPB-AvailabilityService/pkg/dbmetrics"

type DBExecutor = dbmetrics.Executor
