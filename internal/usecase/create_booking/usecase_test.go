package create_booking

import (
	"context"
	"errors"
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
	created  *domain.Booking
	nextID   int64
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	created := *booking
	created.ID = f.nextID
	if created.ID == 0 {
		created.ID = 1
	}
	f.created = &created
	return &created, nil
}

func (f *fakeBookingRepo) GetByCourtWithFilter(_ context.Context, _ domain.CourtBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeNotifyClient struct {
	sent bool
	err  error
}

func (f *fakeNotifyClient) SendBookingConfirmation(_ context.Context, _, _, _, _ string) error {
	f.sent = true
	return f.err
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
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

var (
	testNow  = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	testDate = time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
)

func newTestUseCase(courts *fakeCourtRepo, schedule *fakeScheduleRepo, bookings *fakeBookingRepo, notify *fakeNotifyClient) *UseCase {
	uc := NewUseCase(courts, schedule, bookings, notify, fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		CourtID:   1,
		Date:      testDate,
		StartTime: "10:00",
		EndTime:   "11:00",
		Details: DetailsInput{
			CustomerName: "Ali Khan",
			Phone:        "+923001234567",
			Email:        "ali@example.com",
			OnlinePrice:  3000,
			CashPrice:    3500,
		},
	}
}

func TestExecute_CreatesBooking(t *testing.T) {
	bookings := &fakeBookingRepo{nextID: 42}
	notify := &fakeNotifyClient{}
	uc := newTestUseCase(
		&fakeCourtRepo{court: &domain.Court{ID: 1, Name: "Court 1"}},
		&fakeScheduleRepo{},
		bookings,
		notify,
	)

	// Слот 10:00-11:00 входит во встроенный шаблон по умолчанию
	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.EqualValues(t, 42, resp.ID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.EqualValues(t, "10:00:00", resp.StartTime)
	assert.EqualValues(t, "11:00:00", resp.EndTime)
	assert.Equal(t, "Ali Khan", resp.CustomerName)

	require.NotNil(t, bookings.created)
	assert.Equal(t, domain.StatusConfirmed, bookings.created.Status)
	assert.True(t, notify.sent)
}

func TestExecute_RangeMustMatchGridSlot(t *testing.T) {
	bookings := &fakeBookingRepo{}
	uc := newTestUseCase(
		&fakeCourtRepo{court: &domain.Court{ID: 1}},
		&fakeScheduleRepo{},
		bookings,
		&fakeNotifyClient{},
	)

	req := validRequest()
	// Полуторачасовой интервал не совпадает ни с одним часовым слотом
	req.StartTime = "10:00"
	req.EndTime = "11:30"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
	assert.Nil(t, bookings.created)
}

func TestExecute_CustomGridOverridesTemplate(t *testing.T) {
	schedule := &fakeScheduleRepo{
		custom: []domain.Slot{
			{Range: mustRange(t, "18:00", "19:30")},
		},
	}
	bookings := &fakeBookingRepo{}
	uc := newTestUseCase(&fakeCourtRepo{court: &domain.Court{ID: 1}}, schedule, bookings, &fakeNotifyClient{})

	// 10:00-11:00 есть в шаблоне по умолчанию, но кастомная сетка его вытеснила
	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)

	req := validRequest()
	req.StartTime = "18:00"
	req.EndTime = "19:30"

	_, err = uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, bookings.created)
	assert.Equal(t, mustRange(t, "18:00", "19:30"), bookings.created.Range)
}

func TestExecute_SlotAlreadyHeld(t *testing.T) {
	bookings := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{ID: 7, Range: mustRange(t, "10:00", "11:00"), Status: domain.StatusConfirmed},
		},
	}
	uc := newTestUseCase(&fakeCourtRepo{court: &domain.Court{ID: 1}}, &fakeScheduleRepo{}, bookings, &fakeNotifyClient{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, bookings.created)
}

func TestExecute_AdjacentBookingDoesNotBlock(t *testing.T) {
	bookings := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{ID: 7, Range: mustRange(t, "09:00", "10:00"), Status: domain.StatusConfirmed},
			{ID: 8, Range: mustRange(t, "11:00", "12:00"), Status: domain.StatusConfirmed},
		},
	}
	uc := newTestUseCase(&fakeCourtRepo{court: &domain.Court{ID: 1}}, &fakeScheduleRepo{}, bookings, &fakeNotifyClient{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_CancelledBookingDoesNotBlock(t *testing.T) {
	bookings := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{ID: 7, Range: mustRange(t, "10:00", "11:00"), Status: domain.StatusCancelled},
		},
	}
	uc := newTestUseCase(&fakeCourtRepo{court: &domain.Court{ID: 1}}, &fakeScheduleRepo{}, bookings, &fakeNotifyClient{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_PastDateRejected(t *testing.T) {
	uc := newTestUseCase(&fakeCourtRepo{court: &domain.Court{ID: 1}}, &fakeScheduleRepo{}, &fakeBookingRepo{}, &fakeNotifyClient{})

	req := validRequest()
	req.Date = testNow.AddDate(0, 0, -1)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_SameDayAllowed(t *testing.T) {
	uc := newTestUseCase(&fakeCourtRepo{court: &domain.Court{ID: 1}}, &fakeScheduleRepo{}, &fakeBookingRepo{}, &fakeNotifyClient{})

	req := validRequest()
	req.Date = testNow

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_CourtNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeCourtRepo{err: courtRepo.ErrCourtNotFound}, &fakeScheduleRepo{}, &fakeBookingRepo{}, &fakeNotifyClient{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *Request)
		wantErr error
	}{
		{
			name:    "empty customer name",
			mutate:  func(req *Request) { req.Details.CustomerName = "  " },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "empty phone",
			mutate:  func(req *Request) { req.Details.Phone = "" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "negative price",
			mutate:  func(req *Request) { req.Details.OnlinePrice = -1 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "reversed time bounds",
			mutate:  func(req *Request) { req.StartTime, req.EndTime = "11:00", "10:00" },
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "zero duration",
			mutate:  func(req *Request) { req.EndTime = req.StartTime },
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "missing court id",
			mutate:  func(req *Request) { req.CourtID = 0 },
			wantErr: ErrInvalidInput,
		},
	}

	uc := newTestUseCase(&fakeCourtRepo{court: &domain.Court{ID: 1}}, &fakeScheduleRepo{}, &fakeBookingRepo{}, &fakeNotifyClient{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_NotifyFailureDoesNotFailBooking(t *testing.T) {
	bookings := &fakeBookingRepo{nextID: 5}
	notify := &fakeNotifyClient{err: errors.New("gateway is down")}
	uc := newTestUseCase(&fakeCourtRepo{court: &domain.Court{ID: 1, Name: "Court 1"}}, &fakeScheduleRepo{}, bookings, notify)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.EqualValues(t, 5, resp.ID)
	assert.NotNil(t, bookings.created)
}
