package report

import (
	"fmt"

	"github.com/mesai-app/mesai-backend-go/internal/domain/attendance"
	"github.com/mesai-app/mesai-backend-go/internal/pkg/validator"
)

// ShiftMinutes returns the elapsed minutes between two "HH:MM" clock
// reads. A checkout clock hour numerically below the check-in hour is
// read as a shift crossing midnight and gets a full day added before
// differencing. The heuristic compares hours only: a same-hour pair
// where minutes alone put checkout earlier is not corrected.
func ShiftMinutes(checkIn, checkOut string) (int, error) {
	inHour, inMin, err := validator.ParseClock(checkIn)
	if err != nil {
		return 0, fmt.Errorf("check-in: %w", err)
	}
	outHour, outMin, err := validator.ParseClock(checkOut)
	if err != nil {
		return 0, fmt.Errorf("check-out: %w", err)
	}

	out := outHour*60 + outMin
	if outHour < inHour {
		out += 24 * 60
	}

	return out - (inHour*60 + inMin), nil
}

// AggregateWorkedHours sums worked hours per person. Records whose clock
// strings do not parse are skipped; one bad row must never sink the whole
// report. Totals are unrounded; display precision is the DTO's problem.
func AggregateWorkedHours(records []attendance.Attendance) map[string]float64 {
	totals := make(map[string]float64, len(records))
	for _, rec := range records {
		minutes, err := ShiftMinutes(rec.CheckIn, rec.CheckOut)
		if err != nil {
			continue
		}
		totals[rec.Name] += float64(minutes) / 60.0
	}
	return totals
}
