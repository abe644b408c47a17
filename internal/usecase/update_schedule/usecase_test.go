package update_schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crosscourts/court-booking-service/internal/domain"
	courtRepo "github.com/crosscourts/court-booking-service/internal/infra/storage/court"
)

// Фейки зависимостей use case

type fakeCourtRepo struct {
	court *domain.Court
	err   error
}

func (f *fakeCourtRepo) GetByID(_ context.Context, _ int64) (*domain.Court, error) {
	return f.court, f.err
}

type fakeScheduleRepo struct {
	replaced bool
	gotSeeds []domain.SlotSeed
}

func (f *fakeScheduleRepo) ReplaceCustomSlots(_ context.Context, courtID int64, date time.Time, seeds []domain.SlotSeed) ([]domain.Slot, error) {
	f.replaced = true
	f.gotSeeds = seeds

	slots := make([]domain.Slot, len(seeds))
	for i, seed := range seeds {
		slots[i] = domain.Slot{
			ID:      int64(i + 1),
			CourtID: courtID,
			Date:    date,
			Range:   seed.Range,
			Label:   seed.Label,
			State:   domain.SlotAvailable,
		}
	}
	return slots, nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetByCourtWithFilter(_ context.Context, _ domain.CourtBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func mustRange(t *testing.T, start, end string) domain.TimeRange {
	t.Helper()
	r, err := domain.NewTimeRangeFromStrings(start, end)
	require.NoError(t, err)
	return r
}

var testDate = time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

func newTestUseCase(courts *fakeCourtRepo, schedule *fakeScheduleRepo, bookings *fakeBookingRepo) *UseCase {
	return NewUseCase(courts, schedule, bookings, fakeTxManager{}, nopLogger{})
}

func TestExecute_ReplacesGrid(t *testing.T) {
	schedule := &fakeScheduleRepo{}
	uc := newTestUseCase(&fakeCourtRepo{court: &domain.Court{ID: 1}}, schedule, &fakeBookingRepo{})

	// Слоты поданы не по порядку: сохраняются хронологически
	resp, err := uc.Execute(context.Background(), &Request{
		CourtID: 1,
		Date:    testDate,
		Slots: []SlotInput{
			{StartTime: "12:00", EndTime: "13:00", Label: "Noon"},
			{StartTime: "09:00", EndTime: "10:30", Label: "Morning"},
		},
	})
	require.NoError(t, err)

	assert.True(t, schedule.replaced)
	require.Len(t, resp.Slots, 2)
	assert.EqualValues(t, "09:00:00", resp.Slots[0].StartTime)
	assert.Equal(t, "Morning", resp.Slots[0].Label)
	assert.EqualValues(t, "12:00:00", resp.Slots[1].StartTime)
}

func TestExecute_AdjacentSlotsAreNotAConflict(t *testing.T) {
	schedule := &fakeScheduleRepo{}
	uc := newTestUseCase(&fakeCourtRepo{court: &domain.Court{ID: 1}}, schedule, &fakeBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		CourtID: 1,
		Date:    testDate,
		Slots: []SlotInput{
			{StartTime: "09:00", EndTime: "10:00"},
			{StartTime: "10:00", EndTime: "11:00"},
		},
	})
	assert.NoError(t, err)
	assert.True(t, schedule.replaced)
}

func TestExecute_OverlappingSlotsRejectWholeProposal(t *testing.T) {
	schedule := &fakeScheduleRepo{}
	uc := newTestUseCase(&fakeCourtRepo{court: &domain.Court{ID: 1}}, schedule, &fakeBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		CourtID: 1,
		Date:    testDate,
		Slots: []SlotInput{
			{StartTime: "09:00", EndTime: "11:00"},
			{StartTime: "10:00", EndTime: "12:00"},
		},
	})

	assert.ErrorIs(t, err, ErrSlotConflict)
	// Прежняя сетка осталась нетронутой
	assert.False(t, schedule.replaced)
}

func TestExecute_TooManySlots(t *testing.T) {
	slots := make([]SlotInput, 0, domain.MaxSlotsPerGrid+1)
	start := time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i <= domain.MaxSlotsPerGrid; i++ {
		from := start.Add(time.Duration(i*10) * time.Minute)
		to := from.Add(10 * time.Minute)
		slots = append(slots, SlotInput{
			StartTime: from.Format("15:04:05"),
			EndTime:   to.Format("15:04:05"),
		})
	}

	schedule := &fakeScheduleRepo{}
	uc := newTestUseCase(&fakeCourtRepo{court: &domain.Court{ID: 1}}, schedule, &fakeBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{CourtID: 1, Date: testDate, Slots: slots})
	assert.ErrorIs(t, err, ErrTooManySlots)
	assert.False(t, schedule.replaced)
}

func TestExecute_InvalidTimeRange(t *testing.T) {
	uc := newTestUseCase(&fakeCourtRepo{court: &domain.Court{ID: 1}}, &fakeScheduleRepo{}, &fakeBookingRepo{})

	tests := []struct {
		name string
		slot SlotInput
	}{
		{name: "zero duration", slot: SlotInput{StartTime: "10:00", EndTime: "10:00"}},
		{name: "reversed bounds", slot: SlotInput{StartTime: "11:00", EndTime: "10:00"}},
		{name: "malformed time", slot: SlotInput{StartTime: "ten", EndTime: "11:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &Request{
				CourtID: 1,
				Date:    testDate,
				Slots:   []SlotInput{tt.slot},
			})
			assert.ErrorIs(t, err, ErrInvalidTimeRange)
		})
	}
}

func TestExecute_CourtNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeCourtRepo{err: courtRepo.ErrCourtNotFound}, &fakeScheduleRepo{}, &fakeBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		CourtID: 99,
		Date:    testDate,
		Slots:   []SlotInput{{StartTime: "09:00", EndTime: "10:00"}},
	})
	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestExecute_ActiveBookingMustKeepItsSlot(t *testing.T) {
	bookings := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{ID: 7, Range: mustRange(t, "10:00", "11:00"), Status: domain.StatusConfirmed},
		},
	}

	schedule := &fakeScheduleRepo{}
	uc := newTestUseCase(&fakeCourtRepo{court: &domain.Court{ID: 1}}, schedule, bookings)

	// Новая сетка не содержит слот 10:00-11:00 с активной бронью
	_, err := uc.Execute(context.Background(), &Request{
		CourtID: 1,
		Date:    testDate,
		Slots: []SlotInput{
			{StartTime: "09:00", EndTime: "10:30"},
			{StartTime: "10:30", EndTime: "12:00"},
		},
	})

	assert.ErrorIs(t, err, ErrSlotBooked)
	assert.ErrorIs(t, err, domain.ErrSlotBooked)
	assert.False(t, schedule.replaced)
}

func TestExecute_PreservedBookingAllowsReplace(t *testing.T) {
	bookings := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{ID: 7, Range: mustRange(t, "10:00", "11:00"), Status: domain.StatusConfirmed},
			// Отменённая бронь может осиротеть
			{ID: 8, Range: mustRange(t, "15:00", "16:00"), Status: domain.StatusCancelled},
		},
	}

	schedule := &fakeScheduleRepo{}
	uc := newTestUseCase(&fakeCourtRepo{court: &domain.Court{ID: 1}}, schedule, bookings)

	_, err := uc.Execute(context.Background(), &Request{
		CourtID: 1,
		Date:    testDate,
		Slots: []SlotInput{
			{StartTime: "10:00", EndTime: "11:00"},
			{StartTime: "11:00", EndTime: "12:30"},
		},
	})

	require.NoError(t, err)
	assert.True(t, schedule.replaced)
}

func TestExecute_EmptyProposalRemovesCustomGrid(t *testing.T) {
	schedule := &fakeScheduleRepo{}
	uc := newTestUseCase(&fakeCourtRepo{court: &domain.Court{ID: 1}}, schedule, &fakeBookingRepo{})

	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1, Date: testDate})
	require.NoError(t, err)

	assert.True(t, schedule.replaced)
	assert.Empty(t, resp.Slots)
}
