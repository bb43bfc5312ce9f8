package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/d1mayak/CPB-AvailabilityService/internal/domain"
	"github.com/d1mayak/CPB-AvailabilityService/pkg/dbmetrics"
	"github.com/d1mayak/CPB-AvailabilityService/pkg/psqlbuilder"
	"github.com/d1mayak/CPB-AvailabilityService/pkg/types"
)

var ruleColumns = []string{
	"id",
	"companion_id",
	"day_name",
	"from_time",
	"until_time",
	"is_unavailable",
	"created_at",
	"updated_at",
}

// Repository репозиторий недельного расписания доступности
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByCompanion получает недельное расписание собеседника.
// Отсутствие правил не ошибка: пустое расписание означает,
// что собеседник пока недоступен ни в один день
func (r *Repository) GetByCompanion(ctx context.Context, companionID int64) (domain.WeeklySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From("availability_rules").
		Where(squirrel.Eq{"companion_id": companionID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCompanion - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCompanion - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	week := make(domain.WeeklySchedule, 0, 7)
	for rows.Next() {
		rule, err := r.scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByCompanion: %v", ErrScanRow, err)
		}
		week = append(week, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByCompanion - rows iteration: %v", ErrExecQuery, err)
	}

	return week, nil
}

// ReplaceWeek атомарно заменяет недельное расписание собеседника.
// Вызывается внутри транзакции (txmanager.Do), чтобы читатели
// не увидели наполовину обновленную неделю
func (r *Repository) ReplaceWeek(ctx context.Context, companionID int64, week domain.WeeklySchedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("availability_rules").
		Where(squirrel.Eq{"companion_id": companionID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplaceWeek - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceWeek - execute delete: %v", ErrExecQuery, err)
	}

	if len(week) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("availability_rules").
		Columns("companion_id", "day_name", "from_time", "until_time", "is_unavailable")

	for _, rule := range week {
		insertBuilder = insertBuilder.Values(
			companionID,
			rule.DayName,
			rule.FromTime,
			rule.UntilTime,
			rule.IsUnavailable,
		)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWeek - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceWeek - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) scanRule(rows *sql.Rows) (*domain.AvailabilityRule, error) {
	var rule domain.AvailabilityRule
	var fromTime, untilTime sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := rows.Scan(
		&rule.ID,
		&rule.CompanionID,
		&rule.DayName,
		&fromTime,
		&untilTime,
		&rule.IsUnavailable,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if fromTime.Valid {
		var ts types.TimeString
		if err := ts.Scan(fromTime.String); err != nil {
			return nil, err
		}
		rule.FromTime = &ts
	}
	if untilTime.Valid {
		var ts types.TimeString
		if err := ts.Scan(untilTime.String); err != nil {
			return nil, err
		}
		rule.UntilTime = &ts
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return &rule, nil
}
