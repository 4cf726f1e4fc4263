package property

import (
	"database/sql"

	domain "realty-office-api/internal/domain/property"
)

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func toDBModel(d *domain.Property) *Property {
	return &Property{
		ID:       d.ID,
		Category: d.Category,
		Title:    d.Title,
		Price:    nullString(d.Price),
		Address:  nullString(d.Address),

		Area:          d.Area,
		ExclusiveArea: d.ExclusiveArea,
		ApprovalDate:  nullString(d.ApprovalDate),
		Purpose:       nullString(d.Purpose),
		TotalFloors:   d.TotalFloors,
		Floor:         d.Floor,

		Direction:         nullString(d.Direction),
		DirectionStandard: nullString(d.DirectionStandard),
		TransactionType:   nullString(d.TransactionType),
		Parking:           d.Parking,
		MaintenanceFee:    d.MaintenanceFee,

		PowerSupply:   nullString(d.PowerSupply),
		Hoist:         nullString(d.Hoist),
		CeilingHeight: d.CeilingHeight,
		MoveInDate:    nullString(d.MoveInDate),
		Description:   nullString(d.Description),

		ImagePath:  nullString(d.ImagePath),
		YouTubeURL: nullString(d.YouTubeURL),
		Status:     d.Status,

		CreatedAt: d.CreatedAt,
	}
}

func fromDBModel(m *Property) *domain.Property {
	return &domain.Property{
		ID:       m.ID,
		Category: m.Category,
		Title:    m.Title,
		Price:    m.Price.String,
		Address:  m.Address.String,

		Area:          m.Area,
		ExclusiveArea: m.ExclusiveArea,
		ApprovalDate:  m.ApprovalDate.String,
		Purpose:       m.Purpose.String,
		TotalFloors:   m.TotalFloors,
		Floor:         m.Floor,

		Direction:         m.Direction.String,
		DirectionStandard: m.DirectionStandard.String,
		TransactionType:   m.TransactionType.String,
		Parking:           m.Parking,
		MaintenanceFee:    m.MaintenanceFee,

		PowerSupply:   m.PowerSupply.String,
		Hoist:         m.Hoist.String,
		CeilingHeight: m.CeilingHeight,
		MoveInDate:    m.MoveInDate.String,
		Description:   m.Description.String,

		ImagePath:  m.ImagePath.String,
		YouTubeURL: m.YouTubeURL.String,
		Status:     m.Status,

		CreatedAt: m.CreatedAt,
	}
}

func fromDBModels(models Properties) domain.Properties {
	ps := make(domain.Properties, len(models))
	for idx, m := range models {
		ps[idx] = fromDBModel(m)
	}
	return ps
}
