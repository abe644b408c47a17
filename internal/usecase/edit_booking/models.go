package edit_booking

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

// Request модель запроса на изменение бронирования.
// StartTime и EndTime опциональны: если оба не заданы, бронирование
// остается в своём слоте и меняются только данные клиента
type Request struct {
	BookingID int64        // ID бронирования
	Details   DetailsInput // Новые данные клиента и цены
	StartTime *string      // Новое время начала (опционально)
	EndTime   *string      // Новое время конца (опционально)
}

// Response модель ответа с обновлённым бронированием
type Response struct {
	ID          int64            // ID бронирования
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
