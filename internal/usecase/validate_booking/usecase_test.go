package validate_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d1mayak/CPB-AvailabilityService/internal/domain"
	"github.com/d1mayak/CPB-AvailabilityService/pkg/types"
)

// Фикстуры: "сейчас" - вторник 2026-09-01 09:00 UTC,
// ближайший понедельник - 2026-09-07
var (
	testNow        = time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	testNextMonday = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
)

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type fakeScheduleRepo struct {
	week domain.WeeklySchedule
	err  error
}

func (r *fakeScheduleRepo) GetByCompanion(_ context.Context, _ int64) (domain.WeeklySchedule, error) {
	return r.week, r.err
}

type fakeBookingRepo struct {
	bookings  []*domain.Booking
	err       error
	gotFilter domain.CompanionBookingsFilter
}

func (r *fakeBookingRepo) GetByCompanionWithFilter(_ context.Context, filter domain.CompanionBookingsFilter) ([]*domain.Booking, error) {
	r.gotFilter = filter
	return r.bookings, r.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func timeStr(s string) *types.TimeString {
	ts := types.TimeString(s)
	return &ts
}

func mondaySchedule() domain.WeeklySchedule {
	return domain.WeeklySchedule{
		{
			ID:          1,
			CompanionID: 42,
			DayName:     "Monday",
			FromTime:    timeStr("10:00"),
			UntilTime:   timeStr("18:00"),
		},
	}
}

func newTestUseCase(bookingRepo BookingRepository, scheduleRepo ScheduleRepository) *UseCase {
	uc := NewUseCase(bookingRepo, scheduleRepo, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func TestExecute_ValidCandidate(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	uc := newTestUseCase(bookingRepo, &fakeScheduleRepo{week: mondaySchedule()})

	resp, err := uc.Execute(context.Background(), &Request{
		CompanionID:     42,
		Date:            testNextMonday,
		StartTime:       "11:00 AM",
		DurationMinutes: 60,
	})

	require.NoError(t, err)
	require.True(t, resp.IsValid, "errors: %v", resp.Errors)
	assert.Empty(t, resp.Errors)
	assert.Empty(t, resp.Warnings)
	assert.Equal(t, time.Date(2026, 9, 7, 11, 0, 0, 0, time.UTC), resp.BookingStart)
	assert.Equal(t, time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC), resp.BookingEnd)
	assert.Equal(t, 60, resp.DurationMinutes)
	require.NotNil(t, resp.Window)
	assert.Equal(t, "10:00 AM", resp.Window.FromClock)
	assert.Equal(t, "6:00 PM", resp.Window.UntilClock)
}

func TestExecute_FiltersBookingsToRequestedDate(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	uc := newTestUseCase(bookingRepo, &fakeScheduleRepo{week: mondaySchedule()})

	_, err := uc.Execute(context.Background(), &Request{
		CompanionID:     42,
		Date:            testNextMonday,
		StartTime:       "11:00 AM",
		DurationMinutes: 60,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), bookingRepo.gotFilter.CompanionID)
	require.NotNil(t, bookingRepo.gotFilter.StartDate)
	require.NotNil(t, bookingRepo.gotFilter.EndDate)
	assert.Equal(t, testNextMonday, *bookingRepo.gotFilter.StartDate)
	assert.Equal(t, testNextMonday, *bookingRepo.gotFilter.EndDate)
	assert.False(t, bookingRepo.gotFilter.IncludeInactive)
}

func TestExecute_ConflictingBooking(t *testing.T) {
	bookingRepo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{
				ID:              7,
				CompanionID:     42,
				BookingDate:     testNextMonday,
				StartTime:       types.TimeString("11:00"),
				DurationMinutes: 120,
				Status:          domain.StatusConfirmed,
			},
		},
	}
	uc := newTestUseCase(bookingRepo, &fakeScheduleRepo{week: mondaySchedule()})

	resp, err := uc.Execute(context.Background(), &Request{
		CompanionID:     42,
		Date:            testNextMonday,
		StartTime:       "12:00 PM",
		DurationMinutes: 60,
	})

	require.NoError(t, err)
	assert.False(t, resp.IsValid)
	require.NotEmpty(t, resp.Errors)
	assert.Contains(t, resp.Errors[0], "conflicts")
}

func TestExecute_MissingFieldsAccumulated(t *testing.T) {
	// Пустые дата/время/длительность доходят до движка
	// и возвращаются списком ошибок, а не одной
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{week: mondaySchedule()})

	resp, err := uc.Execute(context.Background(), &Request{CompanionID: 42})

	require.NoError(t, err)
	assert.False(t, resp.IsValid)
	require.Len(t, resp.Errors, 3)
	assert.Contains(t, resp.Errors, "date is required")
	assert.Contains(t, resp.Errors, "start time is required")
	assert.Contains(t, resp.Errors, "duration is required")
}

func TestExecute_ClosedDay(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{week: mondaySchedule()})

	// Среда 2026-09-02: правила на этот день нет
	resp, err := uc.Execute(context.Background(), &Request{
		CompanionID:     42,
		Date:            time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
		StartTime:       "11:00 AM",
		DurationMinutes: 60,
	})

	require.NoError(t, err)
	assert.False(t, resp.IsValid)
	require.NotEmpty(t, resp.Errors)
	assert.Contains(t, resp.Errors[0], "not available")
}

func TestExecute_InvalidCompanionID(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		CompanionID:     0,
		Date:            testNextMonday,
		StartTime:       "11:00 AM",
		DurationMinutes: 60,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_ScheduleRepoError(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{err: errors.New("db down")})

	_, err := uc.Execute(context.Background(), &Request{
		CompanionID:     42,
		Date:            testNextMonday,
		StartTime:       "11:00 AM",
		DurationMinutes: 60,
	})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_BookingRepoError(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{err: errors.New("db down")},
		&fakeScheduleRepo{week: mondaySchedule()},
	)

	_, err := uc.Execute(context.Background(), &Request{
		CompanionID:     42,
		Date:            testNextMonday,
		StartTime:       "11:00 AM",
		DurationMinutes: 60,
	})

	assert.ErrorIs(t, err, ErrInternal)
}
