package attendance

import (
	"strings"

	"github.com/mesai-app/mesai-backend-go/internal/pkg/validator"
)

// ========================================
// LISTING QUERY
// ========================================

// SortField is the allow-listed set of sortable fields. Raw query-string
// values never reach the SQL layer; anything outside the set normalizes
// to SortByDate.
type SortField string

const (
	SortByDate     SortField = "date"
	SortByName     SortField = "name"
	SortByCheckIn  SortField = "giris"
	SortByCheckOut SortField = "cikis"
	SortByOnLeave  SortField = "izin"
)

// ParseSortField normalizes an untrusted sortBy value. Unrecognized input
// falls back to SortByDate rather than being rejected.
func ParseSortField(s string) SortField {
	switch SortField(strings.TrimSpace(s)) {
	case SortByName:
		return SortByName
	case SortByCheckIn:
		return SortByCheckIn
	case SortByCheckOut:
		return SortByCheckOut
	case SortByOnLeave:
		return SortByOnLeave
	default:
		return SortByDate
	}
}

// Column returns the attendances column backing the sort field.
func (f SortField) Column() string {
	switch f {
	case SortByName:
		return "name"
	case SortByCheckIn:
		return "check_in"
	case SortByCheckOut:
		return "check_out"
	case SortByOnLeave:
		return "on_leave"
	default:
		return "date"
	}
}

type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// ParseSortDirection treats exactly "asc" (after trimming) as ascending;
// every other value sorts descending.
func ParseSortDirection(s string) SortDirection {
	if strings.TrimSpace(s) == "asc" {
		return SortAsc
	}
	return SortDesc
}

const DefaultTrailingDays = 14

// ListQuery selects one of three listing modes: trailing-window when
// TrailingDays is set, paginated when both Page and PageSize are set,
// full listing otherwise. Trailing-window wins when both are set.
// Page is zero-based.
type ListQuery struct {
	TextFilter   string
	SortBy       SortField
	SortDir      SortDirection
	Page         *int
	PageSize     *int
	TrailingDays *int
}

func (q ListQuery) TrailingWindow() bool {
	return q.TrailingDays != nil
}

func (q ListQuery) Paginated() bool {
	return !q.TrailingWindow() && q.Page != nil && q.PageSize != nil
}

// ========================================
// REQUESTS
// ========================================

type CreateAttendanceRequest struct {
	Date     string `json:"date"`
	Name     string `json:"name"`
	CheckIn  string `json:"giris"`
	CheckOut string `json:"cikis"`
	OnLeave  *int16 `json:"izin,omitempty"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.ParseDateInput(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be an ISO-8601 timestamp or YYYY-MM-DD",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidClock(r.CheckIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "giris",
			Message: "giris must be a HH:MM clock time",
		})
	}

	if !validator.IsValidClock(r.CheckOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "cikis",
			Message: "cikis must be a HH:MM clock time",
		})
	}

	if r.OnLeave != nil && *r.OnLeave != 0 && *r.OnLeave != 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "izin",
			Message: "izin must be 0 or 1",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAttendanceRequest struct {
	Date     string `json:"date"`
	Name     string `json:"name"`
	CheckIn  string `json:"giris"`
	CheckOut string `json:"cikis"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.ParseDateInput(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be an ISO-8601 timestamp or YYYY-MM-DD",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidClock(r.CheckIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "giris",
			Message: "giris must be a HH:MM clock time",
		})
	}

	if !validator.IsValidClock(r.CheckOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "cikis",
			Message: "cikis must be a HH:MM clock time",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SetLeaveRequest struct {
	OnLeave int16 `json:"izin"`
}

func (r *SetLeaveRequest) Validate() error {
	if r.OnLeave != 0 && r.OnLeave != 1 {
		return validator.ValidationErrors{{
			Field:   "izin",
			Message: "izin must be 0 or 1",
		}}
	}
	return nil
}

// ========================================
// RESPONSES
// ========================================

type AttendanceResponse struct {
	ID       int64  `json:"id"`
	Date     string `json:"date"`
	Name     string `json:"name"`
	CheckIn  string `json:"giris"`
	CheckOut string `json:"cikis"`
	OnLeave  int16  `json:"izin"`
}

// ListAttendanceResponse is the paginated wire shape. Count is the number
// of rows matching the filter across all pages, not the page length.
type ListAttendanceResponse struct {
	Data  []AttendanceResponse `json:"data"`
	Count int64                `json:"count"`
}

// ListResult is what the service hands back for any listing mode. The
// handler serializes a bare list unless Paginated is set.
type ListResult struct {
	Data      []AttendanceResponse
	Count     int64
	Paginated bool
}
