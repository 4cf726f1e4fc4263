package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"realty-office-api/internal/application/ports"
	domain "realty-office-api/internal/domain/inquiry"
	"realty-office-api/internal/infrastructure/mq"
	dto "realty-office-api/internal/interface/api/rest/dto/inquiry"
)

type InquiryService struct {
	repo     domain.Repository
	mq       ports.RabbitMQ
	mCounter *prometheus.CounterVec
}

func NewInquiryService(
	repo domain.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.InquiryService {
	return &InquiryService{
		repo:     repo,
		mq:       mq,
		mCounter: mCounter,
	}
}

func (is *InquiryService) SubmitRequest(ctx context.Context, r domain.Request) (*domain.Request, error) {
	out, err := is.repo.CreateRequest(ctx, &r)
	if err != nil {
		return nil, err
	}

	if out != nil {
		is.mq.GetInputChan() <- mq.Event{
			Id:        uuid.New(),
			TS:        time.Now(),
			Kind:      mq.EventInquiryCreated,
			InquiryID: out.ID,
			Payload:   dto.ToResponse(*out),
		}
	}

	is.mCounter.WithLabelValues("inquiries_created_total").Inc()

	return out, nil
}

func (is *InquiryService) SubmitDetail(ctx context.Context, d domain.Detail) error {
	if err := is.repo.CreateDetail(ctx, &d); err != nil {
		return err
	}

	is.mq.GetInputChan() <- mq.Event{
		Id:        uuid.New(),
		TS:        time.Now(),
		Kind:      mq.EventInquiryDetailed,
		InquiryID: d.RequestID,
	}

	return nil
}

func (is *InquiryService) FindRequests(ctx context.Context, page int) (domain.Requests, error) {
	return is.repo.FetchRequests(ctx, page)
}
