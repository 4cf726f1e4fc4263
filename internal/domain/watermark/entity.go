package watermark

import (
	"context"
	"time"
)

type (
	// Asset is one admin-managed overlay row. Image holds the decoded
	// bytes; the column stores them base64-encoded.
	Asset struct {
		ID            uint64
		Name          string
		Image         []byte
		Anchor        string
		WidthFraction float64
		UpdatedAt     time.Time
	}
	Assets []*Asset
)

type Repository interface {
	FetchAssets(ctx context.Context) (Assets, error)
	UpsertAsset(ctx context.Context, a *Asset) (*Asset, error)
}
