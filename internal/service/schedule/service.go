package schedule

import (
	"context"
	"fmt"
	"strings"

	"github.com/d1mayak/CPB-AvailabilityService/internal/availability"
	"github.com/d1mayak/CPB-AvailabilityService/internal/domain"
	"github.com/d1mayak/CPB-AvailabilityService/internal/service/schedule/models"
	"github.com/d1mayak/CPB-AvailabilityService/pkg/types"
)

// Service сервис для работы с недельным расписанием доступности
type Service struct {
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(scheduleRepo ScheduleRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// GetWeek получает недельное расписание собеседника
func (s *Service) GetWeek(ctx context.Context, companionID int64) (*models.WeekResponse, error) {
	s.logger.Info("GetWeek: fetching schedule for companion=%d", companionID)

	if companionID <= 0 {
		return nil, fmt.Errorf("%w: companionID must be positive", ErrInvalidInput)
	}

	week, err := s.scheduleRepo.GetByCompanion(ctx, companionID)
	if err != nil {
		s.logger.Error("GetWeek: repository error for companion=%d: %v", companionID, err)
		return nil, fmt.Errorf("%w: GetWeek - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetWeek: successfully fetched %d rule(s) for companion=%d", len(week), companionID)
	return models.FromDomainWeek(companionID, week), nil
}

// UpdateWeek полностью заменяет недельное расписание собеседника.
// Время в правилах принимается в любом поддерживаемом формате и нормализуется
// в HH:MM; открытый день без указанного времени получает окно по умолчанию
// 10:00 - 22:00. Каждое правило прогоняется через движок доступности,
// некорректное расписание отклоняется целиком
func (s *Service) UpdateWeek(ctx context.Context, req *models.UpdateWeekRequest) (*models.WeekResponse, error) {
	s.logger.Info("UpdateWeek: updating schedule for companion=%d by user=%d, %d rule(s)",
		req.CompanionID, req.UserID, len(req.Days))

	if req.CompanionID <= 0 {
		return nil, fmt.Errorf("%w: companionID must be positive", ErrInvalidInput)
	}

	// Расписание меняет только сам собеседник
	if req.UserID != req.CompanionID {
		s.logger.Warn("UpdateWeek: access denied for user=%d to companion=%d schedule",
			req.UserID, req.CompanionID)
		return nil, ErrAccessDenied
	}

	week, err := s.buildWeek(req)
	if err != nil {
		s.logger.Warn("UpdateWeek: invalid schedule for companion=%d: %v", req.CompanionID, err)
		return nil, err
	}

	// Заменяем неделю атомарно
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.scheduleRepo.ReplaceWeek(txCtx, req.CompanionID, week)
	})
	if err != nil {
		s.logger.Error("UpdateWeek: repository error for companion=%d: %v", req.CompanionID, err)
		return nil, fmt.Errorf("%w: UpdateWeek - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateWeek: successfully updated schedule for companion=%d, %d rule(s)",
		req.CompanionID, len(week))
	return models.FromDomainWeek(req.CompanionID, week), nil
}

// buildWeek нормализует и валидирует правила запроса
func (s *Service) buildWeek(req *models.UpdateWeekRequest) (domain.WeeklySchedule, error) {
	week := make(domain.WeeklySchedule, 0, len(req.Days))
	seen := make(map[string]bool, len(req.Days))

	for _, day := range req.Days {
		weekday, ok := availability.ParseWeekday(day.Day)
		if !ok {
			return nil, fmt.Errorf("%w: unknown day name %q", ErrInvalidRule, day.Day)
		}

		dayName := weekday.String()
		if seen[dayName] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateDay, dayName)
		}
		seen[dayName] = true

		rule := &domain.AvailabilityRule{
			CompanionID:   req.CompanionID,
			DayName:       dayName,
			IsUnavailable: day.Unavailable.Bool(),
		}

		if !rule.IsUnavailable {
			from, until, err := normalizeWindow(day.From, day.Until)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrInvalidRule, dayName, err)
			}
			rule.FromTime = from
			rule.UntilTime = until
		}

		// Контрольная проверка движком: после нормализации правило
		// обязано быть либо открытым, либо явно заблокированным
		check := availability.DayRule{
			Day:         rule.DayName,
			Unavailable: rule.IsUnavailable,
		}
		if rule.FromTime != nil {
			check.From = rule.FromTime.String()
		}
		if rule.UntilTime != nil {
			check.Until = rule.UntilTime.String()
		}

		normalized := availability.NormalizeDayRule(&check)
		if !rule.IsUnavailable && !normalized.IsAvailable {
			return nil, fmt.Errorf("%w: %s: %s", ErrInvalidRule, dayName, normalized.Reason)
		}

		week = append(week, rule)
	}

	return week, nil
}

// normalizeWindow разбирает границы окна; пустая пара заменяется окном по умолчанию
func normalizeWindow(fromText, untilText string) (*types.TimeString, *types.TimeString, error) {
	fromText = strings.TrimSpace(fromText)
	untilText = strings.TrimSpace(untilText)

	if fromText == "" && untilText == "" {
		from := types.TimeString(domain.DefaultWindowFrom)
		until := types.TimeString(domain.DefaultWindowUntil)
		return &from, &until, nil
	}

	if fromText == "" || untilText == "" {
		return nil, nil, fmt.Errorf("both from and until must be set")
	}

	from, err := types.ParseClockText(fromText)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid from time %q", fromText)
	}

	until, err := types.ParseClockText(untilText)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid until time %q", untilText)
	}

	if !until.IsAfter(from) {
		return nil, nil, fmt.Errorf("until must be after from")
	}

	return &from, &until, nil
}
