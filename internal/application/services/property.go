package services

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"realty-office-api/internal/application/ports"
	"realty-office-api/internal/domain/attachment"
	domain "realty-office-api/internal/domain/property"
)

var ErrPropertyNotFound = errors.New("property not found")

type PropertyService struct {
	log      *zap.Logger
	repo     domain.Repository
	pipeline ports.UploadPipeline
	storage  ports.Storage
	mCounter *prometheus.CounterVec
}

func NewPropertyService(
	logger *zap.Logger,
	repo domain.Repository,
	pipeline ports.UploadPipeline,
	storage ports.Storage,
	mCounter *prometheus.CounterVec,
) ports.PropertyService {
	return &PropertyService{
		log:      logger,
		repo:     repo,
		pipeline: pipeline,
		storage:  storage,
		mCounter: mCounter,
	}
}

func (ps *PropertyService) FindProperties(ctx context.Context, category string, page int) (domain.Properties, error) {
	return ps.repo.FetchProperties(ctx, category, page)
}

func (ps *PropertyService) FindPropertyByID(ctx context.Context, id domain.ID) (*domain.Property, error) {
	p, err := ps.repo.FetchPropertyByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPropertyNotFound
	}
	return p, nil
}

func (ps *PropertyService) FindRecentByCategory(ctx context.Context, category string) (*domain.Property, error) {
	return ps.repo.FetchRecentByCategory(ctx, category)
}

func (ps *PropertyService) CreateProperty(ctx context.Context, in ports.PropertyInput) (*domain.Property, error) {
	res, err := ps.reconcileImages(ctx, in)
	if err != nil {
		return nil, err
	}

	in.Property.ImagePath = res.Column
	out, err := ps.repo.CreateProperty(ctx, &in.Property)
	if err != nil {
		return nil, err
	}
	ps.cleanup(ctx, res.RemoveKeys)

	ps.mCounter.WithLabelValues("properties_created_total").Inc()

	return out, nil
}

func (ps *PropertyService) UpdateProperty(ctx context.Context, in ports.PropertyInput) (*domain.Property, error) {
	prev, err := ps.repo.FetchPropertyByID(ctx, in.Property.ID)
	if err != nil {
		return nil, err
	}
	if prev == nil {
		return nil, ErrPropertyNotFound
	}

	// the form may omit the existing set; fall back to what is stored
	if in.ExistingImagePaths == "" {
		in.ExistingImagePaths = prev.ImagePath
	}

	res, err := ps.reconcileImages(ctx, in)
	if err != nil {
		return nil, err
	}

	in.Property.ImagePath = res.Column
	out, err := ps.repo.UpdateProperty(ctx, &in.Property)
	if err != nil {
		return nil, err
	}
	if out == nil {
		// the row vanished between the fetch and the update
		return nil, ErrPropertyNotFound
	}
	ps.cleanup(ctx, res.RemoveKeys)

	return out, nil
}

func (ps *PropertyService) DeleteProperty(ctx context.Context, id domain.ID) error {
	p, err := ps.repo.FetchPropertyByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrPropertyNotFound
	}

	if err = ps.repo.DeleteProperty(ctx, id); err != nil {
		return err
	}

	val := attachment.Parse(attachment.KindGallery, p.ImagePath)
	ps.cleanup(ctx, val.StorageKeys())

	return nil
}

func (ps *PropertyService) Stats(ctx context.Context) (*ports.DashboardStats, error) {
	total, byCat, err := ps.repo.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}
	return &ports.DashboardStats{Total: total, ByCategory: byCat}, nil
}

// reconcileImages uploads the new files and merges them with the surviving
// previous gallery entries. Uploads happen before any row is written; a
// failed upload surfaces here and nothing is persisted.
func (ps *PropertyService) reconcileImages(ctx context.Context, in ports.PropertyInput) (attachment.Result, error) {
	refs, err := ps.pipeline.Process(ctx, in.Files)
	if err != nil {
		return attachment.Result{}, err
	}

	return attachment.Reconcile(attachment.Request{
		Kind:      attachment.KindGallery,
		Previous:  in.ExistingImagePaths,
		Deletions: in.DeletedImageURLs,
		Uploads:   refs,
	}), nil
}

// cleanup removes unreferenced objects best-effort after a successful write.
func (ps *PropertyService) cleanup(ctx context.Context, keys []string) {
	if len(keys) == 0 {
		return
	}
	removed := ps.storage.Remove(ctx, keys)
	if removed < len(keys) {
		ps.log.Warn("some stored objects were not removed",
			zap.Int("requested", len(keys)),
			zap.Int("removed", removed),
		)
	}
}
