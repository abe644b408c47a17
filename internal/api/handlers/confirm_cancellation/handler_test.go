package confirm_cancellation

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	confirmCancellation "github.com/crosscourts/court-booking-service/internal/usecase/confirm_cancellation"
)

type fakeUseCase struct {
	gotReq *confirmCancellation.Request
	resp   *confirmCancellation.Response
	err    error
}

func (f *fakeUseCase) Execute(_ context.Context, req *confirmCancellation.Request) (*confirmCancellation.Response, error) {
	f.gotReq = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, useCase *fakeUseCase, bookingID, body string) *httptest.ResponseRecorder {
	t.Helper()

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/bookings/{bookingId}/cancellation-verify", NewHandler(useCase, nopLogger{}).Handle).
		Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/"+bookingID+"/cancellation-verify", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	cancelledAt := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	useCase := &fakeUseCase{
		resp: &confirmCancellation.Response{
			BookingID:   10,
			Status:      "cancelled",
			CancelledAt: cancelledAt,
		},
	}

	rec := doRequest(t, useCase, "10", `{"code":"0042"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, useCase.gotReq)
	assert.EqualValues(t, 10, useCase.gotReq.BookingID)
	assert.Equal(t, "0042", useCase.gotReq.Code)

	var resp CancellationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.EqualValues(t, 10, resp.BookingID)
	assert.Equal(t, "cancelled", resp.Status)
	assert.Equal(t, cancelledAt.Format(time.RFC3339), resp.CancelledAt)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "booking not found", err: confirmCancellation.ErrBookingNotFound, wantStatus: http.StatusNotFound},
		{name: "already cancelled", err: confirmCancellation.ErrAlreadyCancelled, wantStatus: http.StatusConflict},
		{name: "code mismatch", err: confirmCancellation.ErrCodeMismatch, wantStatus: http.StatusBadRequest},
		{name: "code expired", err: confirmCancellation.ErrCodeExpired, wantStatus: http.StatusBadRequest},
		{name: "code already used", err: confirmCancellation.ErrCodeAlreadyUsed, wantStatus: http.StatusBadRequest},
		{name: "invalid input", err: confirmCancellation.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal error", err: confirmCancellation.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, "10", `{"code":"0042"}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_BadRequests(t *testing.T) {
	t.Run("non-numeric booking id", func(t *testing.T) {
		rec := doRequest(t, &fakeUseCase{}, "abc", `{"code":"0042"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := doRequest(t, &fakeUseCase{}, "10", `{"code":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown field", func(t *testing.T) {
		rec := doRequest(t, &fakeUseCase{}, "10", `{"code":"0042","extra":true}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
