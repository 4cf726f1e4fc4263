package ports

import (
	"context"

	"realty-office-api/internal/domain/watermark"
)

type WatermarkService interface {
	FindAssets(ctx context.Context) (watermark.Assets, error)
	SaveAsset(ctx context.Context, a watermark.Asset) (*watermark.Asset, error)
}
