package property

import "context"

type Repository interface {
	FetchProperties(ctx context.Context, category string, page int) (Properties, error)
	FetchPropertyByID(ctx context.Context, id ID) (*Property, error)
	FetchRecentByCategory(ctx context.Context, category string) (*Property, error)
	CreateProperty(ctx context.Context, p *Property) (*Property, error)
	UpdateProperty(ctx context.Context, p *Property) (*Property, error)
	DeleteProperty(ctx context.Context, id ID) error
	CountByCategory(ctx context.Context) (int64, []CategoryCount, error)
}
