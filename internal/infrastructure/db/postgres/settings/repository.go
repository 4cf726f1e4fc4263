package settings

import (
	"context"

	domain "realty-office-api/internal/domain/settings"
	"realty-office-api/internal/infrastructure/db/postgres"
)

const (
	SelectSettings = `SELECT key, value FROM site_settings`
	// updates are surgical: only keys already present in the table change
	UpdateSetting = `UPDATE site_settings SET value = $1 WHERE key = $2`
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchAll(ctx context.Context) (domain.Values, error) {
	rows, err := r.db.Query(ctx, SelectSettings)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vals := make(domain.Values)
	for rows.Next() {
		var k, v string
		if err = rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		vals[k] = v
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vals, nil
}

func (r *Repository) UpdateValues(ctx context.Context, vals domain.Values) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for k, v := range vals {
		if _, err = tx.Exec(ctx, UpdateSetting, v, k); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
