package services

import (
	"context"
	"errors"

	"realty-office-api/internal/application/ports"
	domain "realty-office-api/internal/domain/page"
)

var ErrPageNotFound = errors.New("page not found")

type PageService struct {
	repo domain.Repository
}

func NewPageService(repo domain.Repository) ports.PageService {
	return &PageService{repo: repo}
}

func (ps *PageService) FindPages(ctx context.Context) (domain.Pages, error) {
	return ps.repo.FetchPages(ctx)
}

func (ps *PageService) FindPageBySlug(ctx context.Context, slug string) (*domain.Page, error) {
	p, err := ps.repo.FetchPageBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPageNotFound
	}
	return p, nil
}

func (ps *PageService) SavePage(ctx context.Context, p *domain.Page) (*domain.Page, error) {
	return ps.repo.UpsertPage(ctx, p)
}
