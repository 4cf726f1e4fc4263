package page

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domain "realty-office-api/internal/domain/page"
	"realty-office-api/internal/infrastructure/db/postgres"
)

const (
	SelectPages      = `SELECT slug, title, content, updated_at FROM pages ORDER BY slug`
	SelectPageBySlug = `SELECT slug, title, content, updated_at FROM pages WHERE slug = $1`
	UpsertPage       = `
		INSERT INTO pages (slug, title, content)
		VALUES ($1, $2, $3)
		ON CONFLICT (slug) DO UPDATE SET title = EXCLUDED.title, content = EXCLUDED.content, updated_at = CURRENT_TIMESTAMP
		RETURNING slug, title, content, updated_at
	`
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func scanRow(row pgx.Row) (*domain.Page, error) {
	p := new(domain.Page)
	if err := row.Scan(&p.Slug, &p.Title, &p.Content, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *Repository) FetchPages(ctx context.Context) (domain.Pages, error) {
	rows, err := r.db.Query(ctx, SelectPages)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ps domain.Pages
	for rows.Next() {
		p, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		ps = append(ps, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ps, nil
}

func (r *Repository) FetchPageBySlug(ctx context.Context, slug string) (*domain.Page, error) {
	p, err := scanRow(r.db.QueryRow(ctx, SelectPageBySlug, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (r *Repository) UpsertPage(ctx context.Context, req *domain.Page) (*domain.Page, error) {
	return scanRow(r.db.QueryRow(ctx, UpsertPage, req.Slug, req.Title, req.Content))
}
