package service

import (
	"context"
	"strings"

	"orderdesk/internal/domain"

	"github.com/google/uuid"
)

type RestaurantService struct {
	repo RestaurantRepository
	qr   QRGenerator
}

func NewRestaurantService(repo RestaurantRepository, qr QRGenerator) *RestaurantService {
	return &RestaurantService{repo: repo, qr: qr}
}

func (s *RestaurantService) BySlug(ctx context.Context, slug string) (*domain.Restaurant, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, domain.ErrRestaurantNotFound
	}
	return s.repo.GetRestaurantBySlug(ctx, slug)
}

func (s *RestaurantService) ByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.Restaurant, error) {
	if ownerID == uuid.Nil {
		return nil, domain.ErrRestaurantNotFound
	}
	return s.repo.GetRestaurantByOwner(ctx, ownerID)
}

// QRCode renders the PNG for a restaurant's ordering page. The restaurant
// must exist so that printed codes never point at a dead page.
func (s *RestaurantService) QRCode(ctx context.Context, slug string) ([]byte, error) {
	rest, err := s.BySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.qr.Generate(rest.Slug)
}

func (s *RestaurantService) Plans() []domain.PlanDetails {
	return domain.Plans()
}
