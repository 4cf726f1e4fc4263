package services

import (
	"context"

	"realty-office-api/internal/application/ports"
	domain "realty-office-api/internal/domain/settings"
)

type SettingsService struct {
	repo domain.Repository
}

func NewSettingsService(repo domain.Repository) ports.SettingsService {
	return &SettingsService{repo: repo}
}

func (ss *SettingsService) FindAll(ctx context.Context) (domain.Values, error) {
	return ss.repo.FetchAll(ctx)
}

func (ss *SettingsService) Update(ctx context.Context, vals domain.Values) error {
	return ss.repo.UpdateValues(ctx, vals)
}
