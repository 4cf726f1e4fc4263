package ports

import (
	"context"

	"realty-office-api/internal/domain/inquiry"
)

type InquiryService interface {
	SubmitRequest(ctx context.Context, r inquiry.Request) (*inquiry.Request, error)
	SubmitDetail(ctx context.Context, d inquiry.Detail) error
	FindRequests(ctx context.Context, page int) (inquiry.Requests, error)
}
