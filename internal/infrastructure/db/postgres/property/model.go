package property

import (
	"database/sql"
	"time"
)

type (
	Property struct {
		ID       uint64
		Category string
		Title    string
		Price    sql.NullString
		Address  sql.NullString

		Area          *float64
		ExclusiveArea *float64
		ApprovalDate  sql.NullString
		Purpose       sql.NullString
		TotalFloors   *int
		Floor         *int

		Direction         sql.NullString
		DirectionStandard sql.NullString
		TransactionType   sql.NullString
		Parking           *int
		MaintenanceFee    *int

		PowerSupply   sql.NullString
		Hoist         sql.NullString
		CeilingHeight *float64
		MoveInDate    sql.NullString
		Description   sql.NullString

		ImagePath  sql.NullString
		YouTubeURL sql.NullString
		Status     string

		CreatedAt time.Time
	}
	Properties []*Property
)
