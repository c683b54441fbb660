package reddit

type envelope[T any] struct {
	Data T `json:"data"`
}

type entityResponse struct {
	ID string `json:"id"`
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type campaignPayload struct {
	Name             string  `json:"name,omitempty"`
	Objective        string  `json:"objective,omitempty"`
	ConfiguredStatus string  `json:"configured_status,omitempty"`
	GoalType         string  `json:"goal_type,omitempty"`
	GoalValue        *int64  `json:"goal_value,omitempty"` // micro-units
	StartTime        *string `json:"start_time,omitempty"`
	EndTime          *string `json:"end_time,omitempty"`
}

type targetingPayload struct {
	Communities  []string `json:"communities,omitempty"`
	Geolocations []string `json:"geolocations,omitempty"`
	Devices      []string `json:"devices,omitempty"`
}

type adGroupPayload struct {
	Name             string            `json:"name,omitempty"`
	ConfiguredStatus string            `json:"configured_status,omitempty"`
	BidStrategy      string            `json:"bid_strategy,omitempty"`
	BidValue         *int64            `json:"bid_value,omitempty"` // micro-units
	Targeting        *targetingPayload `json:"targeting,omitempty"`
}

type adPayload struct {
	Name             string `json:"name,omitempty"`
	Headline         string `json:"headline,omitempty"`
	Body             string `json:"body,omitempty"`
	ClickURL         string `json:"click_url,omitempty"`
	DisplayURL       string `json:"display_url,omitempty"`
	CallToAction     string `json:"call_to_action,omitempty"`
	ConfiguredStatus string `json:"configured_status,omitempty"`
}

type PageInfo struct {
	Page     int `json:"page"`
	NumPages int `json:"num_pages"`
	PageSize int `json:"page_size"`
}

type campaignListResponse struct {
	Data       []campaignItem `json:"data"`
	Pagination PageInfo       `json:"pagination"`
}

type campaignItem struct {
	ID               string `json:"id"`
	ConfiguredStatus string `json:"configured_status"`
	ModifiedAt       string `json:"modified_at"`
	GoalValue        *int64 `json:"goal_value"`
}
