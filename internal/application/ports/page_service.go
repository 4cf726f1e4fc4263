package ports

import (
	"context"

	"realty-office-api/internal/domain/page"
)

type PageService interface {
	FindPages(ctx context.Context) (page.Pages, error)
	FindPageBySlug(ctx context.Context, slug string) (*page.Page, error)
	SavePage(ctx context.Context, p *page.Page) (*page.Page, error)
}
