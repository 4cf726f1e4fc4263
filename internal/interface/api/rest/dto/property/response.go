package property

import "time"

type (
	Property struct {
		ID       uint64 `json:"id"`
		Category string `json:"category"`
		Title    string `json:"title"`
		Price    string `json:"price"`
		Address  string `json:"address"`

		Area          *float64 `json:"area,omitempty"`
		ExclusiveArea *float64 `json:"exclusive_area,omitempty"`
		ApprovalDate  string   `json:"approval_date,omitempty"`
		Purpose       string   `json:"purpose,omitempty"`
		TotalFloors   *int     `json:"total_floors,omitempty"`
		Floor         *int     `json:"floor,omitempty"`

		Direction         string `json:"direction,omitempty"`
		DirectionStandard string `json:"direction_standard,omitempty"`
		TransactionType   string `json:"transaction_type,omitempty"`
		Parking           *int   `json:"parking,omitempty"`
		MaintenanceFee    *int   `json:"maintenance_fee,omitempty"`

		PowerSupply   string   `json:"power_supply,omitempty"`
		Hoist         string   `json:"hoist,omitempty"`
		CeilingHeight *float64 `json:"ceiling_height,omitempty"`
		MoveInDate    string   `json:"move_in_date,omitempty"`
		Description   string   `json:"description,omitempty"`

		ImagePath  string `json:"image_path"`
		YouTubeURL string `json:"youtube_url,omitempty"`
		Status     string `json:"status"`

		CreatedAt time.Time `json:"created_at"`
	}
	Properties []Property

	ResponseData struct {
		Data Properties `json:"data"`
	}

	CategoryCount struct {
		Category string `json:"category"`
		Count    int64  `json:"count"`
	}

	Stats struct {
		Total      int64           `json:"total"`
		ByCategory []CategoryCount `json:"by_category"`
	}
)
