package notifyservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы со шлюзом WhatsApp-уведомлений
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента шлюза уведомлений
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Send отправляет сообщение на номер получателя
func (c *Client) Send(ctx context.Context, phone, text string) error {
	url := fmt.Sprintf("%s/send-whatsapp", c.baseURL)

	payload, err := json.Marshal(Message{Phone: phone, Text: text})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal message: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var sendResp SendResponse
	if err := json.NewDecoder(resp.Body).Decode(&sendResp); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if !sendResp.Success {
		return fmt.Errorf("%w: gateway rejected message: %s", ErrInvalidResponse, sendResp.Error)
	}

	return nil
}

// SendCancellationCode отправляет код подтверждения отмены с graceful degradation.
// При недоступности шлюза возвращает ErrServiceDegraded: код остается валидным,
// вызывающая сторона решает, отдавать ли его клиенту другим каналом
func (c *Client) SendCancellationCode(ctx context.Context, phone, code string) error {
	c.log.Info("Sending cancellation code to phone=%s", phone)

	text := fmt.Sprintf("Your CrossCourts cancellation code is %s. It expires in 10 minutes.", code)
	if err := c.Send(ctx, phone, text); err != nil {
		// Шлюз недоступен или ответил ошибкой - не валим операцию отмены
		c.log.Error("Notify gateway unavailable, applying graceful degradation for phone=%s: %v", phone, err)
		return fmt.Errorf("%w: phone=%s, error=%v", ErrServiceDegraded, phone, err)
	}

	c.log.Info("Successfully sent cancellation code to phone=%s", phone)
	return nil
}

// SendBookingConfirmation отправляет подтверждение бронирования с graceful degradation
func (c *Client) SendBookingConfirmation(ctx context.Context, phone, courtName, date, timeRange string) error {
	c.log.Info("Sending booking confirmation to phone=%s", phone)

	text := fmt.Sprintf("Your booking at %s on %s (%s) is confirmed. See you on court!", courtName, date, timeRange)
	if err := c.Send(ctx, phone, text); err != nil {
		c.log.Error("Notify gateway unavailable, applying graceful degradation for phone=%s: %v", phone, err)
		return fmt.Errorf("%w: phone=%s, error=%v", ErrServiceDegraded, phone, err)
	}

	c.log.Info("Successfully sent booking confirmation to phone=%s", phone)
	return nil
}
