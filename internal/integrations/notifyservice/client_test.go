package notifyservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestSend(t *testing.T) {
	var got Message

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/send-whatsapp", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(SendResponse{Success: true})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, nopLogger{})

	err := client.Send(context.Background(), "+923001234567", "hello")
	require.NoError(t, err)

	assert.Equal(t, "+923001234567", got.Phone)
	assert.Equal(t, "hello", got.Text)
}

func TestSend_GatewayRejects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(SendResponse{Success: false, Error: "unknown number"})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, nopLogger{})

	err := client.Send(context.Background(), "+923001234567", "hello")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestSend_UnexpectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, nopLogger{})

	err := client.Send(context.Background(), "+923001234567", "hello")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestSendCancellationCode_DegradesGracefully(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, nopLogger{})

	err := client.SendCancellationCode(context.Background(), "+923001234567", "0042")
	assert.ErrorIs(t, err, ErrServiceDegraded)
}

func TestSendBookingConfirmation(t *testing.T) {
	var got Message

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(SendResponse{Success: true})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, nopLogger{})

	err := client.SendBookingConfirmation(context.Background(), "+923001234567", "Court 1", "2026-09-10", "10:00:00-11:00:00")
	require.NoError(t, err)

	assert.Equal(t, "+923001234567", got.Phone)
	assert.Contains(t, got.Text, "Court 1")
	assert.Contains(t, got.Text, "2026-09-10")
}
