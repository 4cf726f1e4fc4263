package property

import "time"

type (
	ID = uint64

	// Property is one listing. Numeric fields are pointers because the
	// admin form leaves most of them empty for residential listings and
	// most of the residential fields empty for industrial ones.
	Property struct {
		ID       ID
		Category string
		Title    string
		Price    string
		Address  string

		Area          *float64
		ExclusiveArea *float64
		ApprovalDate  string
		Purpose       string
		TotalFloors   *int
		Floor         *int

		Direction         string
		DirectionStandard string
		TransactionType   string
		Parking           *int
		MaintenanceFee    *int

		PowerSupply   string
		Hoist         string
		CeilingHeight *float64
		MoveInDate    string
		Description   string

		ImagePath  string // gallery attachment column
		YouTubeURL string
		Status     string

		CreatedAt time.Time
	}
	Properties []*Property

	// CategoryCount backs the admin dashboard breakdown.
	CategoryCount struct {
		Category string
		Count    int64
	}
)
