package inquiry

import domain "realty-office-api/internal/domain/inquiry"

func ToResponse(d domain.Request) Request {
	return Request{
		ID:               d.ID,
		ConsultationType: d.ConsultationType,
		CustomerName:     d.CustomerName,
		ContactMethod:    d.ContactMethod,
		ContactInfo:      d.ContactInfo,
		CreatedAt:        d.CreatedAt,
	}
}

func ToResponses(ds domain.Requests) Requests {
	rs := make(Requests, len(ds))
	for idx, d := range ds {
		rs[idx] = ToResponse(*d)
	}
	return rs
}

func ToDomain(r Request) domain.Request {
	return domain.Request{
		ConsultationType: r.ConsultationType,
		CustomerName:     r.CustomerName,
		ContactMethod:    r.ContactMethod,
		ContactInfo:      r.ContactInfo,
	}
}

func DetailToDomain(r DetailRequest) domain.Detail {
	return domain.Detail{
		RequestID:     r.RequestID,
		PropertyType:  r.PropertyType,
		DesiredArea:   r.DesiredArea,
		Budget:        r.Budget,
		Rooms:         r.Rooms,
		BusinessType:  r.BusinessType,
		RequiredArea:  r.RequiredArea,
		OtherRequests: r.OtherRequests,
	}
}
