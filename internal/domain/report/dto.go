package report

import (
	"github.com/mesai-app/mesai-backend-go/internal/pkg/validator"
)

// ========================================
// WORKED HOURS REPORT
// ========================================

type WorkedHoursRequest struct {
	// Days is the trailing window length; 0 means the default two weeks.
	Days       int
	NameFilter string
}

func (r *WorkedHoursRequest) Validate() error {
	if r.Days < 0 || r.Days > 366 {
		return validator.ValidationErrors{{
			Field:   "days",
			Message: "days must be between 0 and 366",
		}}
	}
	return nil
}

type WorkedHoursEntry struct {
	Name       string  `json:"name"`
	TotalHours float64 `json:"total_hours"`
	Records    int     `json:"records"`
}

type WorkedHoursReport struct {
	Days        int    `json:"days"`
	PeriodStart string `json:"period_start"`
	GeneratedAt string `json:"generated_at"`

	Entries []WorkedHoursEntry `json:"entries"`
}
