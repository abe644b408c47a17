package notifyservice

// Message модель исходящего WhatsApp-сообщения
type Message struct {
	Phone string `json:"phone"`
	Text  string `json:"message"`
}

// SendResponse модель ответа шлюза уведомлений
type SendResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
