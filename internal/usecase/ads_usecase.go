package usecase

import (
	"context"
	"fmt"

	"farmconnect/internal/domain/user"
	"farmconnect/internal/repository"

	"github.com/google/uuid"
)

type CreateCampaignInput struct {
	CompanyID  uuid.UUID
	Name       string
	Content    string
	TargetRole string
	Budget     float64
}

type AdsUsecase interface {
	CreateCampaign(ctx context.Context, in CreateCampaignInput) (repository.AdCampaign, error)
	TargetAudience(ctx context.Context, targetRole string) ([]user.User, error)
}

type Ads struct {
	ads   repository.AdRepository
	users repository.UserRepository
}

func NewAdsUsecase(ads repository.AdRepository, users repository.UserRepository) *Ads {
	return &Ads{ads: ads, users: users}
}

func (s *Ads) CreateCampaign(ctx context.Context, in CreateCampaignInput) (repository.AdCampaign, error) {
	if in.CompanyID == uuid.Nil {
		return repository.AdCampaign{}, ErrUnauthorized
	}
	if in.Name == "" || in.Content == "" || in.TargetRole == "" || in.Budget <= 0 {
		return repository.AdCampaign{}, ErrInvalidInput
	}

	created, err := s.ads.CreateCampaign(ctx, repository.AdCampaign{
		CompanyID:  in.CompanyID,
		Name:       in.Name,
		Content:    in.Content,
		TargetRole: in.TargetRole,
		Budget:     in.Budget,
	})
	if err != nil {
		return repository.AdCampaign{}, fmt.Errorf("%w: %v", ErrDataAccess, err)
	}
	return created, nil
}

func (s *Ads) TargetAudience(ctx context.Context, targetRole string) ([]user.User, error) {
	if targetRole == "" {
		return nil, ErrInvalidInput
	}

	audience, err := s.users.ListByRole(ctx, targetRole, 100)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataAccess, err)
	}
	return audience, nil
}
