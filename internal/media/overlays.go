package media

import (
	"bytes"
	"context"
	"sync"
	"time"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type (
	// OverlayAsset is the raw, undecoded form of a watermark as stored by
	// an asset source (a database row or a file on disk).
	OverlayAsset struct {
		Name          string
		Data          []byte
		Anchor        Anchor
		WidthFraction float64
	}

	// AssetSource fetches the current overlay assets from wherever they
	// are administered.
	AssetSource interface {
		FetchOverlayAssets(ctx context.Context) ([]OverlayAsset, error)
	}

	// CachedProvider decodes assets from a source and serves them from a
	// time-boxed cache. Refreshes swap the whole slice under a write lock
	// and concurrent cache misses collapse into a single fetch, so an
	// upload burst costs at most one source round trip per window.
	CachedProvider struct {
		source AssetSource
		ttl    time.Duration
		logger *zap.Logger

		sf singleflight.Group

		mu        sync.RWMutex
		overlays  []Overlay
		fetchedAt time.Time
	}

	// StaticProvider serves a fixed overlay set decoded at construction.
	StaticProvider struct {
		overlays []Overlay
	}
)

func NewCachedProvider(source AssetSource, ttl time.Duration, logger *zap.Logger) *CachedProvider {
	return &CachedProvider{source: source, ttl: ttl, logger: logger}
}

func (p *CachedProvider) Overlays(ctx context.Context) ([]Overlay, error) {
	p.mu.RLock()
	if p.overlays != nil && time.Since(p.fetchedAt) < p.ttl {
		ovs := p.overlays
		p.mu.RUnlock()
		return ovs, nil
	}
	p.mu.RUnlock()

	v, err, _ := p.sf.Do("overlays", func() (any, error) {
		assets, err := p.source.FetchOverlayAssets(ctx)
		if err != nil {
			return nil, err
		}
		ovs := p.decode(assets)

		p.mu.Lock()
		p.overlays = ovs
		p.fetchedAt = time.Now()
		p.mu.Unlock()

		return ovs, nil
	})
	if err != nil {
		// serve the stale set rather than dropping the watermark
		p.mu.RLock()
		defer p.mu.RUnlock()
		if p.overlays != nil {
			return p.overlays, nil
		}
		return nil, err
	}

	return v.([]Overlay), nil
}

// Invalidate forces the next Overlays call to hit the source. Called after an
// admin updates a watermark asset.
func (p *CachedProvider) Invalidate() {
	p.mu.Lock()
	p.fetchedAt = time.Time{}
	p.overlays = nil
	p.mu.Unlock()
}

func (p *CachedProvider) decode(assets []OverlayAsset) []Overlay {
	ovs := make([]Overlay, 0, len(assets))
	for _, a := range assets {
		img, err := imaging.Decode(bytes.NewReader(a.Data))
		if err != nil {
			p.logger.Warn("skipping undecodable watermark asset",
				zap.String("name", a.Name), zap.Error(err))
			continue
		}
		ovs = append(ovs, Overlay{
			Name:          a.Name,
			Image:         img,
			Anchor:        a.Anchor,
			WidthFraction: a.WidthFraction,
		})
	}
	return ovs
}

func NewStaticProvider(overlays []Overlay) *StaticProvider {
	return &StaticProvider{overlays: overlays}
}

func (p *StaticProvider) Overlays(context.Context) ([]Overlay, error) {
	return p.overlays, nil
}
