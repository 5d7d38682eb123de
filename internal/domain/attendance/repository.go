package attendance

import (
	"context"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create inserts a new record and returns it with the store-assigned id
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByID retrieves a single record
	GetByID(ctx context.Context, id int64) (Attendance, error)

	// Update replaces date, name, check_in and check_out. It never writes
	// on_leave; the two mutation surfaces are disjoint.
	Update(ctx context.Context, att Attendance) (Attendance, error)

	// SetLeave writes only the on_leave flag
	SetLeave(ctx context.Context, id int64, onLeave int16) (Attendance, error)

	// Delete removes a record, reporting ErrAttendanceNotFound when absent
	Delete(ctx context.Context, id int64) error

	// List runs the filtered/sorted query. The returned count is the total
	// number of rows matching the filter regardless of pagination.
	List(ctx context.Context, q ListQuery) ([]Attendance, int64, error)
}
