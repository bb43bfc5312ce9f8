package booking

import "github.com/d1mayak/CPB-AvailabilityService/pkg/dbmetrics"

// DBExecutor интерфейс для выполнения запросов
// Реализуется *sql.DB и обёрткой *dbmetrics.DB
type DBExecutor = dbmetrics.Executor
