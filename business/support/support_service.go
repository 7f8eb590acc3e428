package support

import (
	"context"
	"time"

	"byteBrosStore/domain"
	"byteBrosStore/pkg/logger"

	"github.com/google/uuid"
)

type SupportRepository interface {
	Create(ctx context.Context, interaction *domain.SupportInteraction) error
}

type supportService struct {
	supportRepo SupportRepository
}

func NewSupportService(supportRepo SupportRepository) *supportService {
	return &supportService{
		supportRepo: supportRepo,
	}
}

// CreateInteraction stores the contact-form submission and returns the
// protocol number assigned to it.
func (s *supportService) CreateInteraction(ctx context.Context, interaction *domain.SupportInteraction) (string, error) {
	interaction.Protocol = uuid.NewString()
	interaction.CreatedAt = time.Now()

	if err := s.supportRepo.Create(ctx, interaction); err != nil {
		logger.Error("Failed to save support interaction", err)
		return "", err
	}

	return interaction.Protocol, nil
}
