package property

import domain "realty-office-api/internal/domain/property"

func ToResponse(d domain.Property) Property {
	return Property{
		ID:       d.ID,
		Category: d.Category,
		Title:    d.Title,
		Price:    d.Price,
		Address:  d.Address,

		Area:          d.Area,
		ExclusiveArea: d.ExclusiveArea,
		ApprovalDate:  d.ApprovalDate,
		Purpose:       d.Purpose,
		TotalFloors:   d.TotalFloors,
		Floor:         d.Floor,

		Direction:         d.Direction,
		DirectionStandard: d.DirectionStandard,
		TransactionType:   d.TransactionType,
		Parking:           d.Parking,
		MaintenanceFee:    d.MaintenanceFee,

		PowerSupply:   d.PowerSupply,
		Hoist:         d.Hoist,
		CeilingHeight: d.CeilingHeight,
		MoveInDate:    d.MoveInDate,
		Description:   d.Description,

		ImagePath:  d.ImagePath,
		YouTubeURL: d.YouTubeURL,
		Status:     d.Status,

		CreatedAt: d.CreatedAt,
	}
}

func ToResponses(ds domain.Properties) Properties {
	ps := make(Properties, len(ds))
	for idx, d := range ds {
		ps[idx] = ToResponse(*d)
	}
	return ps
}
