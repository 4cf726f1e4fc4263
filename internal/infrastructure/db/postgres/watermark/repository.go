package watermark

import (
	"context"
	"encoding/base64"

	domain "realty-office-api/internal/domain/watermark"
	"realty-office-api/internal/infrastructure/db/postgres"
)

const (
	SelectAssets = `
		SELECT id, name, image_base64, anchor, width_fraction, updated_at
		FROM watermark_assets
		ORDER BY name
	`
	UpsertAsset = `
		INSERT INTO watermark_assets (name, image_base64, anchor, width_fraction, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (name) DO UPDATE
		SET image_base64 = EXCLUDED.image_base64,
		    anchor = EXCLUDED.anchor,
		    width_fraction = EXCLUDED.width_fraction,
		    updated_at = now()
		RETURNING id, name, image_base64, anchor, width_fraction, updated_at
	`
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchAssets(ctx context.Context) (domain.Assets, error) {
	rows, err := r.db.Query(ctx, SelectAssets)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var as domain.Assets
	for rows.Next() {
		var (
			a   domain.Asset
			b64 string
		)
		if err = rows.Scan(&a.ID, &a.Name, &b64, &a.Anchor, &a.WidthFraction, &a.UpdatedAt); err != nil {
			return nil, err
		}
		if a.Image, err = base64.StdEncoding.DecodeString(b64); err != nil {
			return nil, err
		}
		as = append(as, &a)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return as, nil
}

func (r *Repository) UpsertAsset(ctx context.Context, req *domain.Asset) (*domain.Asset, error) {
	var (
		a   domain.Asset
		b64 string
	)
	err := r.db.QueryRow(ctx, UpsertAsset,
		req.Name, base64.StdEncoding.EncodeToString(req.Image), req.Anchor, req.WidthFraction,
	).Scan(&a.ID, &a.Name, &b64, &a.Anchor, &a.WidthFraction, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if a.Image, err = base64.StdEncoding.DecodeString(b64); err != nil {
		return nil, err
	}

	return &a, nil
}
