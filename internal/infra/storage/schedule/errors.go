package schedule

import "errors"

var (
	ErrBuildQuery = errors.New("storage/schedule: build query")
	ErrExecQuery  = errors.New("storage/schedule: execute query")
	ErrScanRow    = errors.New("storage/schedule: scan row")
)
