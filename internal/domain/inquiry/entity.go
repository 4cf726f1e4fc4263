package inquiry

import (
	"context"
	"time"
)

type (
	ID = uint64

	// Request is the short contact form a visitor submits first.
	Request struct {
		ID               ID
		ConsultationType string
		CustomerName     string
		ContactMethod    string // "email" or "phone"
		ContactInfo      string
		CreatedAt        time.Time
	}
	Requests []*Request

	// Detail is the follow-up form reached through the link sent after the
	// initial request.
	Detail struct {
		RequestID     ID
		PropertyType  string
		DesiredArea   string
		Budget        string
		Rooms         string
		BusinessType  string
		RequiredArea  string
		OtherRequests string
	}
)

type Repository interface {
	CreateRequest(ctx context.Context, r *Request) (*Request, error)
	CreateDetail(ctx context.Context, d *Detail) error
	FetchRequests(ctx context.Context, page int) (Requests, error)
}
