package inquiry

import "time"

type (
	// Request mirrors the public consultation form.
	Request struct {
		ID               uint64    `json:"id"`
		ConsultationType string    `json:"consultation_type"`
		CustomerName     string    `json:"customer_name"`
		ContactMethod    string    `json:"contact_method"`
		ContactInfo      string    `json:"contact_info"`
		CreatedAt        time.Time `json:"created_at"`
	}
	Requests []Request

	// DetailRequest is the follow-up form body.
	DetailRequest struct {
		RequestID     uint64 `json:"request_id"`
		PropertyType  string `json:"property_type"`
		DesiredArea   string `json:"desired_area"`
		Budget        string `json:"budget"`
		Rooms         string `json:"rooms"`
		BusinessType  string `json:"business_type"`
		RequiredArea  string `json:"required_area"`
		OtherRequests string `json:"other_requests"`
	}

	ResponseData struct {
		Data Requests `json:"data"`
	}
)
