package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/mesai-app/mesai-backend-go/internal/domain/attendance"
	"github.com/mesai-app/mesai-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = "id, date, name, check_in, check_out, on_leave, created_at, updated_at"

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.Date, &att.Name, &att.CheckIn, &att.CheckOut, &att.OnLeave,
		&att.CreatedAt, &att.UpdatedAt,
	)
	return att, err
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (date, name, check_in, check_out, on_leave)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.Date,
		att.Name,
		att.CheckIn,
		att.CheckOut,
		att.OnLeave,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id int64) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE id = $1`

	att, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return att, nil
}

// Update implements attendance.AttendanceRepository. It deliberately does
// not write on_leave; that column belongs to SetLeave.
func (a *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET date = $1, name = $2, check_in = $3, check_out = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING ` + attendanceColumns

	updated, err := scanAttendance(q.QueryRow(ctx, query,
		att.Date, att.Name, att.CheckIn, att.CheckOut, att.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	return updated, nil
}

// SetLeave implements attendance.AttendanceRepository.
func (a *attendanceRepository) SetLeave(ctx context.Context, id int64, onLeave int16) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET on_leave = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + attendanceColumns

	updated, err := scanAttendance(q.QueryRow(ctx, query, onLeave, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to set leave flag: %w", err)
	}

	return updated, nil
}

// Delete implements attendance.AttendanceRepository.
func (a *attendanceRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, a.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.ListQuery) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	// Build WHERE clause
	var conds []string
	var args []interface{}
	argIdx := 1

	// Name substring filter
	if text := strings.TrimSpace(filter.TextFilter); text != "" {
		conds = append(conds, fmt.Sprintf("name ILIKE $%d", argIdx))
		args = append(args, "%"+text+"%")
		argIdx++
	}

	// Trailing window filter, inclusive of the boundary day
	if filter.TrailingDays != nil {
		since := time.Now().AddDate(0, 0, -*filter.TrailingDays)
		conds = append(conds, fmt.Sprintf("date >= $%d", argIdx))
		args = append(args, since.Format("2006-01-02"))
		argIdx++
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	// Count total matching rows irrespective of the page window. Only the
	// paginated mode reports the count, so only it pays for the query.
	var total int64
	if filter.Paginated() {
		countQuery := "SELECT COUNT(*) FROM attendances" + where
		if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
		}
	}

	// ORDER BY: the sort field is an enum mapped through Column(), never a
	// raw string, and id is a tiebreaker for stable page boundaries.
	orderBy := fmt.Sprintf(" ORDER BY %s %s, id %s",
		filter.SortBy.Column(), filter.SortDir, filter.SortDir)

	selectQuery := "SELECT " + attendanceColumns + " FROM attendances" + where + orderBy

	if filter.Paginated() {
		// The window is exactly what the caller asked for; clamping the
		// size here would break the caller's ceil(count/pageSize) page
		// arithmetic and make tail rows unreachable.
		size := *filter.PageSize
		selectQuery += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
		args = append(args, size, *filter.Page*size)
	}

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read attendances: %w", err)
	}

	if !filter.Paginated() {
		total = int64(len(attendances))
	}

	return attendances, total, nil
}
