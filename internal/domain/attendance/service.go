package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// List runs one of the three listing modes selected by the query
	List(ctx context.Context, q ListQuery) (ListResult, error)

	// Get retrieves a single record by id
	Get(ctx context.Context, id int64) (AttendanceResponse, error)

	// Create inserts a new record; izin defaults to 0 when omitted
	Create(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)

	// Update fully replaces date/name/giris/cikis, leaving izin untouched
	Update(ctx context.Context, id int64, req UpdateAttendanceRequest) (AttendanceResponse, error)

	// SetLeave mutates only the izin flag
	SetLeave(ctx context.Context, id int64, req SetLeaveRequest) (AttendanceResponse, error)

	// Delete removes a record by id
	Delete(ctx context.Context, id int64) error
}
