package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"realty-office-api/internal/application/ports"
	propdomain "realty-office-api/internal/domain/property"
)

type fakePropertyRepo struct {
	props  map[propdomain.ID]*propdomain.Property
	nextID propdomain.ID
	// vanish makes UpdateProperty behave as if the row was deleted
	// between the service's fetch and its update
	vanish bool
}

func newFakePropertyRepo() *fakePropertyRepo {
	return &fakePropertyRepo{props: make(map[propdomain.ID]*propdomain.Property), nextID: 1}
}

func (f *fakePropertyRepo) FetchProperties(context.Context, string, int) (propdomain.Properties, error) {
	var ps propdomain.Properties
	for _, p := range f.props {
		ps = append(ps, p)
	}
	return ps, nil
}

func (f *fakePropertyRepo) FetchPropertyByID(_ context.Context, id propdomain.ID) (*propdomain.Property, error) {
	return f.props[id], nil
}

func (f *fakePropertyRepo) FetchRecentByCategory(context.Context, string) (*propdomain.Property, error) {
	return nil, nil
}

func (f *fakePropertyRepo) CreateProperty(_ context.Context, p *propdomain.Property) (*propdomain.Property, error) {
	cp := *p
	cp.ID = f.nextID
	f.nextID++
	f.props[cp.ID] = &cp
	return &cp, nil
}

func (f *fakePropertyRepo) UpdateProperty(_ context.Context, p *propdomain.Property) (*propdomain.Property, error) {
	if f.vanish {
		return nil, nil
	}
	if _, ok := f.props[p.ID]; !ok {
		return nil, nil
	}
	cp := *p
	f.props[cp.ID] = &cp
	return &cp, nil
}

func (f *fakePropertyRepo) DeleteProperty(_ context.Context, id propdomain.ID) error {
	delete(f.props, id)
	return nil
}

func (f *fakePropertyRepo) CountByCategory(context.Context) (int64, []propdomain.CategoryCount, error) {
	return int64(len(f.props)), nil, nil
}

func newPropertyService(repo *fakePropertyRepo, pl ports.UploadPipeline, store *fakeStorage) *PropertyService {
	return &PropertyService{
		log:      zap.NewNop(),
		repo:     repo,
		pipeline: pl,
		storage:  store,
		mCounter: testCounter(),
	}
}

func TestPropertyService_UpdateProperty(t *testing.T) {
	ctx := context.Background()

	t.Run("missing property", func(t *testing.T) {
		svc := newPropertyService(newFakePropertyRepo(), &fakePipeline{}, newFakeStorage())
		_, err := svc.UpdateProperty(ctx, ports.PropertyInput{
			Property: propdomain.Property{ID: 42, Title: "없는 매물"},
		})
		assert.ErrorIs(t, err, ErrPropertyNotFound)
	})

	t.Run("row deleted mid update maps to not found", func(t *testing.T) {
		repo := newFakePropertyRepo()
		existing, err := repo.CreateProperty(ctx, &propdomain.Property{
			Category: "주거용",
			Title:    "역세권 아파트",
			Status:   "판매중",
		})
		require.NoError(t, err)

		repo.vanish = true
		store := newFakeStorage()
		svc := newPropertyService(repo, &fakePipeline{}, store)

		_, err = svc.UpdateProperty(ctx, ports.PropertyInput{
			Property: propdomain.Property{ID: existing.ID, Title: "수정"},
		})
		assert.ErrorIs(t, err, ErrPropertyNotFound)
		assert.Empty(t, store.removed)
	})
}
