package report

import (
	"context"
)

// ReportService defines derived read models over attendance records
type ReportService interface {
	// WorkedHours totals hours worked per person over the trailing window
	WorkedHours(ctx context.Context, req WorkedHoursRequest) (WorkedHoursReport, error)
}
