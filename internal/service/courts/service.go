package courts

import (
	"context"
	"fmt"

	"github.com/crosscourts/court-booking-service/internal/domain"
	"github.com/crosscourts/court-booking-service/internal/service/courts/models"
)

// Service сервис для чтения справочника кортов
type Service struct {
	courtRepo CourtRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса кортов
func NewService(courtRepo CourtRepository, logger Logger) *Service {
	return &Service{
		courtRepo: courtRepo,
		logger:    logger,
	}
}

// List получает список кортов, опционально по категории
func (s *Service) List(ctx context.Context, category *string) (*models.CourtListResponse, error) {
	s.logger.Info("List: fetching courts, category=%v", category)

	var domainCategory *domain.CourtCategory
	if category != nil {
		c, ok := models.ToDomainCourtCategory(*category)
		if !ok {
			s.logger.Warn("List: invalid category=%s", *category)
			return nil, ErrInvalidCategory
		}
		domainCategory = &c
	}

	courts, err := s.courtRepo.List(ctx, domainCategory)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d courts", len(courts))
	return models.FromDomainCourtList(courts), nil
}
