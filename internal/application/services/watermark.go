package services

import (
	"bytes"
	"context"
	"time"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"realty-office-api/internal/application/ports"
	domain "realty-office-api/internal/domain/watermark"
	"realty-office-api/internal/media"
)

// WatermarkService manages the overlay assets and backs the cached provider
// the compositor reads from. Saving an asset invalidates the cache so the
// next upload composites the fresh overlay.
type WatermarkService struct {
	repo     domain.Repository
	cache    *media.CachedProvider
	fallback string
}

func NewWatermarkService(
	logger *zap.Logger,
	repo domain.Repository,
	ttl time.Duration,
	fallbackText string,
) *WatermarkService {
	ws := &WatermarkService{repo: repo, fallback: fallbackText}
	ws.cache = media.NewCachedProvider(ws, ttl, logger)
	return ws
}

// Provider exposes the overlay cache for compositor wiring.
func (ws *WatermarkService) Provider() *media.CachedProvider { return ws.cache }

func (ws *WatermarkService) FindAssets(ctx context.Context) (domain.Assets, error) {
	return ws.repo.FetchAssets(ctx)
}

func (ws *WatermarkService) SaveAsset(ctx context.Context, a domain.Asset) (*domain.Asset, error) {
	out, err := ws.repo.UpsertAsset(ctx, &a)
	if err != nil {
		return nil, err
	}
	ws.cache.Invalidate()
	return out, nil
}

// FetchOverlayAssets adapts the stored rows to the media package's source
// contract. A fresh install with no uploaded assets falls back to a rendered
// text mark so listings never go out unmarked.
func (ws *WatermarkService) FetchOverlayAssets(ctx context.Context) ([]media.OverlayAsset, error) {
	rows, err := ws.repo.FetchAssets(ctx)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return ws.textFallback()
	}

	assets := make([]media.OverlayAsset, 0, len(rows))
	for _, r := range rows {
		assets = append(assets, media.OverlayAsset{
			Name:          r.Name,
			Data:          r.Image,
			Anchor:        media.Anchor(r.Anchor),
			WidthFraction: r.WidthFraction,
		})
	}

	return assets, nil
}

func (ws *WatermarkService) textFallback() ([]media.OverlayAsset, error) {
	if ws.fallback == "" {
		return nil, nil
	}

	img, err := media.RenderTextMark(ws.fallback, 48, 128)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, err
	}

	return []media.OverlayAsset{{
		Name:          "text-fallback",
		Data:          buf.Bytes(),
		Anchor:        media.AnchorBottomRight,
		WidthFraction: 0.3,
	}}, nil
}

var (
	_ ports.WatermarkService = (*WatermarkService)(nil)
	_ media.AssetSource      = (*WatermarkService)(nil)
)
