package property

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domain "realty-office-api/internal/domain/property"
	"realty-office-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) scanRow(row pgx.Row) (*Property, error) {
	p := new(Property)
	err := row.Scan(
		&p.ID, &p.Category, &p.Title, &p.Price, &p.Address,
		&p.Area, &p.ExclusiveArea, &p.ApprovalDate, &p.Purpose, &p.TotalFloors, &p.Floor,
		&p.Direction, &p.DirectionStandard, &p.TransactionType, &p.Parking, &p.MaintenanceFee,
		&p.PowerSupply, &p.Hoist, &p.CeilingHeight, &p.MoveInDate, &p.Description,
		&p.ImagePath, &p.YouTubeURL, &p.Status, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *Repository) FetchProperties(ctx context.Context, category string, page int) (domain.Properties, error) {
	rows, err := r.db.Query(ctx, SelectProperties, category, page)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ps Properties
	for rows.Next() {
		p, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		ps = append(ps, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(ps), nil
}

func (r *Repository) FetchPropertyByID(ctx context.Context, id domain.ID) (*domain.Property, error) {
	p, err := r.scanRow(r.db.QueryRow(ctx, SelectPropertyByID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return fromDBModel(p), nil
}

func (r *Repository) FetchRecentByCategory(ctx context.Context, category string) (*domain.Property, error) {
	p, err := r.scanRow(r.db.QueryRow(ctx, SelectRecentByCategory, category))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return fromDBModel(p), nil
}

func (r *Repository) CreateProperty(ctx context.Context, req *domain.Property) (*domain.Property, error) {
	m := toDBModel(req)
	p, err := r.scanRow(r.db.QueryRow(ctx, InsertProperty,
		m.Category, m.Title, m.Price, m.Address,
		m.Area, m.ExclusiveArea, m.ApprovalDate, m.Purpose, m.TotalFloors, m.Floor,
		m.Direction, m.DirectionStandard, m.TransactionType, m.Parking, m.MaintenanceFee,
		m.PowerSupply, m.Hoist, m.CeilingHeight, m.MoveInDate, m.Description,
		m.ImagePath, m.YouTubeURL, m.Status,
	))
	if err != nil {
		return nil, err
	}
	return fromDBModel(p), nil
}

func (r *Repository) UpdateProperty(ctx context.Context, req *domain.Property) (*domain.Property, error) {
	m := toDBModel(req)
	p, err := r.scanRow(r.db.QueryRow(ctx, UpdatePropertyByID,
		m.Category, m.Title, m.Price, m.Address,
		m.Area, m.ExclusiveArea, m.ApprovalDate, m.Purpose, m.TotalFloors, m.Floor,
		m.Direction, m.DirectionStandard, m.TransactionType, m.Parking, m.MaintenanceFee,
		m.PowerSupply, m.Hoist, m.CeilingHeight, m.MoveInDate, m.Description,
		m.ImagePath, m.YouTubeURL, m.Status, req.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return fromDBModel(p), nil
}

func (r *Repository) DeleteProperty(ctx context.Context, id domain.ID) error {
	_, err := r.db.Exec(ctx, DeletePropertyByID, id)
	return err
}

func (r *Repository) CountByCategory(ctx context.Context) (int64, []domain.CategoryCount, error) {
	var total int64
	if err := r.db.QueryRow(ctx, CountProperties).Scan(&total); err != nil {
		return 0, nil, err
	}

	rows, err := r.db.Query(ctx, CountByCategory)
	if err != nil {
		return 0, nil, err
	}
	defer rows.Close()

	var counts []domain.CategoryCount
	for rows.Next() {
		var c domain.CategoryCount
		if err = rows.Scan(&c.Category, &c.Count); err != nil {
			return 0, nil, err
		}
		counts = append(counts, c)
	}
	if err = rows.Err(); err != nil {
		return 0, nil, err
	}

	return total, counts, nil
}
