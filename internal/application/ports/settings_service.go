package ports

import (
	"context"

	"realty-office-api/internal/domain/settings"
)

type SettingsService interface {
	FindAll(ctx context.Context) (settings.Values, error)
	Update(ctx context.Context, vals settings.Values) error
}
