package report

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/mesai-app/mesai-backend-go/internal/domain/attendance"
	"github.com/mesai-app/mesai-backend-go/internal/domain/report"
)

type ReportServiceImpl struct {
	attendance.AttendanceRepository
}

func NewReportService(repo attendance.AttendanceRepository) report.ReportService {
	return &ReportServiceImpl{
		AttendanceRepository: repo,
	}
}

// WorkedHours implements report.ReportService. It runs the same
// trailing-window listing the sheet view uses, then reduces it to
// per-person totals.
func (s *ReportServiceImpl) WorkedHours(ctx context.Context, req report.WorkedHoursRequest) (report.WorkedHoursReport, error) {
	if err := req.Validate(); err != nil {
		return report.WorkedHoursReport{}, err
	}

	days := req.Days
	if days == 0 {
		days = attendance.DefaultTrailingDays
	}

	q := attendance.ListQuery{
		TextFilter:   req.NameFilter,
		SortBy:       attendance.SortByDate,
		SortDir:      attendance.SortDesc,
		TrailingDays: &days,
	}

	records, _, err := s.AttendanceRepository.List(ctx, q)
	if err != nil {
		return report.WorkedHoursReport{}, fmt.Errorf("failed to list attendances for report: %w", err)
	}

	now := time.Now()
	return report.WorkedHoursReport{
		Days:        days,
		PeriodStart: now.AddDate(0, 0, -days).Format("2006-01-02"),
		GeneratedAt: now.UTC().Format(time.RFC3339),
		Entries:     buildEntries(records),
	}, nil
}

// buildEntries reduces records to per-person entries sorted by name.
// Rounding to two decimals happens here, at the wire boundary only.
func buildEntries(records []attendance.Attendance) []report.WorkedHoursEntry {
	counts := make(map[string]int, len(records))
	for _, rec := range records {
		if _, err := ShiftMinutes(rec.CheckIn, rec.CheckOut); err != nil {
			continue
		}
		counts[rec.Name]++
	}

	totals := AggregateWorkedHours(records)

	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]report.WorkedHoursEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, report.WorkedHoursEntry{
			Name:       name,
			TotalHours: math.Round(totals[name]*100) / 100,
			Records:    counts[name],
		})
	}
	return entries
}
