package domain

import "time"

// Report statuses
const (
	ReportStatusPending  = "pending"
	ReportStatusResolved = "resolved"
	ReportStatusRejected = "rejected"
)

// Report - жалоба пользователя на спот
type Report struct {
	ID         string    `json:"id" db:"id"`
	SpotID     string    `json:"spot_id" db:"spot_id"`
	ReporterID string    `json:"reporter_id" db:"reporter_id"`
	Reason     string    `json:"reason" db:"reason"`
	Status     string    `json:"status" db:"status"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// ValidReportStatus проверяет статус жалобы
func ValidReportStatus(s string) bool {
	switch s {
	case ReportStatusPending, ReportStatusResolved, ReportStatusRejected:
		return true
	}
	return false
}
