package inquiry

import (
	"context"

	domain "realty-office-api/internal/domain/inquiry"
	"realty-office-api/internal/infrastructure/db/postgres"
)

const (
	InsertRequest = `
		INSERT INTO consultation_requests (consultation_type, customer_name, contact_method, contact_info)
		VALUES ($1, $2, $3, $4)
		RETURNING id, consultation_type, customer_name, contact_method, contact_info, created_at
	`
	InsertDetail = `
		INSERT INTO consultation_details
			(request_id, property_type, desired_area, budget, rooms, business_type, required_area, other_requests)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	SelectRequests = `
		SELECT id, consultation_type, customer_name, contact_method, contact_info, created_at
		FROM consultation_requests
		ORDER BY created_at DESC
		LIMIT 50 OFFSET ( ($1 - 1) * 50 )
	`
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateRequest(ctx context.Context, req *domain.Request) (*domain.Request, error) {
	out := new(domain.Request)
	err := r.db.QueryRow(ctx, InsertRequest,
		req.ConsultationType, req.CustomerName, req.ContactMethod, req.ContactInfo,
	).Scan(
		&out.ID, &out.ConsultationType, &out.CustomerName, &out.ContactMethod, &out.ContactInfo, &out.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repository) CreateDetail(ctx context.Context, d *domain.Detail) error {
	_, err := r.db.Exec(ctx, InsertDetail,
		d.RequestID, d.PropertyType, d.DesiredArea, d.Budget,
		d.Rooms, d.BusinessType, d.RequiredArea, d.OtherRequests,
	)
	return err
}

func (r *Repository) FetchRequests(ctx context.Context, page int) (domain.Requests, error) {
	rows, err := r.db.Query(ctx, SelectRequests, page)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rs domain.Requests
	for rows.Next() {
		req := new(domain.Request)
		if err = rows.Scan(
			&req.ID, &req.ConsultationType, &req.CustomerName,
			&req.ContactMethod, &req.ContactInfo, &req.CreatedAt,
		); err != nil {
			return nil, err
		}
		rs = append(rs, req)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return rs, nil
}
