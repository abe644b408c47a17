package models

import (
	"github.com/crosscourts/court-booking-service/internal/domain"
)

// CourtResponse ответ с данными корта
type CourtResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// CourtListResponse ответ со списком кортов
type CourtListResponse struct {
	Courts []CourtResponse `json:"courts"`
}

// FromDomainCourtList конвертирует список domain моделей в DTO
func FromDomainCourtList(courts []*domain.Court) *CourtListResponse {
	resp := &CourtListResponse{
		Courts: make([]CourtResponse, 0, len(courts)),
	}

	for _, c := range courts {
		resp.Courts = append(resp.Courts, CourtResponse{
			ID:       c.ID,
			Name:     c.Name,
			Category: string(c.Category),
		})
	}

	return resp
}

// ToDomainCourtCategory конвертирует строку в domain.CourtCategory с валидацией
func ToDomainCourtCategory(category string) (domain.CourtCategory, bool) {
	c := domain.CourtCategory(category)

	switch c {
	case domain.CategoryCricket, domain.CategoryFutsal, domain.CategoryPadel:
		return c, true
	}

	return "", false
}
