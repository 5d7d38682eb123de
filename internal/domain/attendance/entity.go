package attendance

import (
	"time"
)

// Attendance is one sheet row: a person's check-in/check-out for a single
// day. CheckIn and CheckOut are "HH:MM" wall-clock strings exactly as the
// sheet UI submits them. OnLeave is a 0/1 flag owned by its own update
// path and never written by the full update.
type Attendance struct {
	ID        int64
	Date      time.Time
	Name      string
	CheckIn   string
	CheckOut  string
	OnLeave   int16
	CreatedAt time.Time
	UpdatedAt time.Time
}
