package get_schedule

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
	custom   []domain.Slot
	template []domain.SlotSeed
}

func (f *fakeScheduleRepo) GetCustomSlots(_ context.Context, _ int64, _ time.Time) ([]domain.Slot, error) {
	return f.custom, nil
}

func (f *fakeScheduleRepo) GetTemplate(_ context.Context, _ int64) ([]domain.SlotSeed, error) {
	return f.template, nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetByCourtWithFilter(_ context.Context, _ domain.CourtBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
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

func testCourt() *domain.Court {
	return &domain.Court{ID: 1, Name: "Court 1", Category: domain.CategoryCricket}
}

func TestExecute_CustomGridTakesPrecedence(t *testing.T) {
	schedule := &fakeScheduleRepo{
		custom: []domain.Slot{
			{ID: 10, Range: mustRange(t, "18:00", "19:30"), Label: "Evening"},
			{ID: 11, Range: mustRange(t, "19:30", "21:00")},
		},
		// Шаблон настроен, но кастомная сетка должна его перекрыть
		template: []domain.SlotSeed{
			{Range: mustRange(t, "09:00", "10:00")},
		},
	}

	uc := NewUseCase(&fakeCourtRepo{court: testCourt()}, schedule, &fakeBookingRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1, Date: testDate})
	require.NoError(t, err)

	assert.True(t, resp.Custom)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "Evening", resp.Slots[0].Label)
	assert.EqualValues(t, "18:00:00", resp.Slots[0].StartTime)
	assert.EqualValues(t, "19:30:00", resp.Slots[0].EndTime)
}

func TestExecute_TemplateFallback(t *testing.T) {
	schedule := &fakeScheduleRepo{
		template: []domain.SlotSeed{
			{Range: mustRange(t, "09:00", "10:30"), Label: "Slot A"},
			{Range: mustRange(t, "10:30", "12:00"), Label: "Slot B"},
		},
	}

	uc := NewUseCase(&fakeCourtRepo{court: testCourt()}, schedule, &fakeBookingRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1, Date: testDate})
	require.NoError(t, err)

	assert.False(t, resp.Custom)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "Slot A", resp.Slots[0].Label)
}

func TestExecute_DefaultTemplateWhenNothingConfigured(t *testing.T) {
	uc := NewUseCase(&fakeCourtRepo{court: testCourt()}, &fakeScheduleRepo{}, &fakeBookingRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1, Date: testDate})
	require.NoError(t, err)

	assert.False(t, resp.Custom)
	require.Len(t, resp.Slots, 17)
	assert.EqualValues(t, "06:00:00", resp.Slots[0].StartTime)
	assert.EqualValues(t, "23:00:00", resp.Slots[len(resp.Slots)-1].EndTime)
}

func TestExecute_OverlayBookings(t *testing.T) {
	schedule := &fakeScheduleRepo{
		template: []domain.SlotSeed{
			{Range: mustRange(t, "09:00", "10:00")},
			{Range: mustRange(t, "10:00", "11:00")},
			{Range: mustRange(t, "11:00", "12:00")},
		},
	}

	bookings := &fakeBookingRepo{
		bookings: []*domain.Booking{
			// Пересекает два слота: 10:00-11:00 и 11:00-12:00
			{ID: 42, Range: mustRange(t, "10:30", "11:30"), Status: domain.StatusConfirmed},
			// Отменённая бронь слот не держит
			{ID: 43, Range: mustRange(t, "09:00", "10:00"), Status: domain.StatusCancelled},
		},
	}

	uc := NewUseCase(&fakeCourtRepo{court: testCourt()}, schedule, bookings, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1, Date: testDate})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 3)

	assert.False(t, resp.Slots[0].Booked)
	assert.Nil(t, resp.Slots[0].BookingID)

	assert.True(t, resp.Slots[1].Booked)
	require.NotNil(t, resp.Slots[1].BookingID)
	assert.EqualValues(t, 42, *resp.Slots[1].BookingID)

	assert.True(t, resp.Slots[2].Booked)
}

func TestExecute_AdjacentBookingDoesNotHoldSlot(t *testing.T) {
	schedule := &fakeScheduleRepo{
		template: []domain.SlotSeed{
			{Range: mustRange(t, "10:00", "11:00")},
		},
	}

	bookings := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{ID: 1, Range: mustRange(t, "09:00", "10:00"), Status: domain.StatusConfirmed},
			{ID: 2, Range: mustRange(t, "11:00", "12:00"), Status: domain.StatusConfirmed},
		},
	}

	uc := NewUseCase(&fakeCourtRepo{court: testCourt()}, schedule, bookings, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1, Date: testDate})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)
	assert.False(t, resp.Slots[0].Booked)
}

func TestExecute_CourtNotFound(t *testing.T) {
	uc := NewUseCase(&fakeCourtRepo{err: courtRepo.ErrCourtNotFound}, &fakeScheduleRepo{}, &fakeBookingRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{CourtID: 99, Date: testDate})
	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeCourtRepo{court: testCourt()}, &fakeScheduleRepo{}, &fakeBookingRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{CourtID: 0, Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{CourtID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
