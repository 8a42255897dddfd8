package dto

// ReportSpotRequest - жалоба на спот
type ReportSpotRequest struct {
	SpotID     string `json:"spotId" validate:"required"`
	ReporterID string `json:"reporterId"`
	Reason     string `json:"reason" validate:"required,min=3,max=1000"`
}

// ReviewSpotRequest - решение модератора по споту
type ReviewSpotRequest struct {
	Accept bool `json:"accept"`
}

// ListReportsRequest - фильтр по статусам жалоб
type ListReportsRequest struct {
	Statuses []string `query:"status"`
}
