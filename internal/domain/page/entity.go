package page

import (
	"context"
	"time"
)

type (
	// Page is one admin-editable content page served by slug, such as the
	// privacy policy or the terms of service.
	Page struct {
		Slug      string
		Title     string
		Content   string
		UpdatedAt time.Time
	}
	Pages []*Page
)

type Repository interface {
	FetchPages(ctx context.Context) (Pages, error)
	FetchPageBySlug(ctx context.Context, slug string) (*Page, error)
	// UpsertPage inserts the page or fully replaces the one stored under
	// its slug.
	UpsertPage(ctx context.Context, p *Page) (*Page, error)
}
