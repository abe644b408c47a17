package create_booking

import (
	"time"

	"github.com/crosscourts/court-booking-service/pkg/types"
)

// DetailsInput входная модель данных клиента и цен
type DetailsInput struct {
	CustomerName string  // Имя клиента
	Phone        string  // Контактный телефон
	Email        string  // Email
	OnlinePrice  float64 // Цена при онлайн-оплате
	CashPrice    float64 // Цена при оплате на месте
	AddOn        *string // Дополнительная услуга (опционально)
	AddOnPrice   float64 // Цена дополнительной услуги
}

// Request модель запроса на создание бронирования
type Request struct {
	CourtID   int64        // ID корта
	Date      time.Time    // Дата бронирования (без времени)
	StartTime string       // Время начала слота ("10:00" или "10:00:00")
	EndTime   string       // Время конца слота
	Details   DetailsInput // Данные клиента и цены
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64            // ID созданного бронирования
	CourtID     int64            // ID корта
	BookingDate time.Time        // Дата бронирования
	StartTime   types.TimeString // Время начала
	EndTime     types.TimeString // Время конца
	Status      string           // Статус бронирования

	CustomerName string  // Имя клиента
	Phone        string  // Контактный телефон
	Email        string  // Email
	OnlinePrice  float64 // Цена при онлайн-оплате
	CashPrice    float64 // Цена при оплате на месте
	AddOn        *string // Дополнительная услуга
	AddOnPrice   float64 // Цена дополнительной услуги

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
