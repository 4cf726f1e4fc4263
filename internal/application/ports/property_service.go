package ports

import (
	"context"
	"mime/multipart"

	"realty-office-api/internal/domain/property"
)

type (
	// PropertyInput is the typed form of a listing create/edit submission.
	// The boundary parses the transport representation; nothing below this
	// point sees the raw multipart body.
	PropertyInput struct {
		Property           property.Property
		Files              []*multipart.FileHeader
		ExistingImagePaths string
		DeletedImageURLs   []string
	}

	DashboardStats struct {
		Total      int64
		ByCategory []property.CategoryCount
	}
)

type PropertyService interface {
	FindProperties(ctx context.Context, category string, page int) (property.Properties, error)
	FindPropertyByID(ctx context.Context, id property.ID) (*property.Property, error)
	FindRecentByCategory(ctx context.Context, category string) (*property.Property, error)
	CreateProperty(ctx context.Context, in PropertyInput) (*property.Property, error)
	UpdateProperty(ctx context.Context, in PropertyInput) (*property.Property, error)
	DeleteProperty(ctx context.Context, id property.ID) error
	Stats(ctx context.Context) (*DashboardStats, error)
}
