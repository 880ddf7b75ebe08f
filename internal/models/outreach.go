package models

const StatusActive = "Active"

type Partnership struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	Status         string  `json:"status"`
	Members        int     `json:"members"`
	MonthlyRevenue float64 `json:"monthlyRevenue"`
}

type Campaign struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Status      string  `json:"status"`
	Reach       int     `json:"reach"`
	Engagement  float64 `json:"engagement"`
	Conversions int     `json:"conversions"`
	ROI         float64 `json:"roi"`
}
