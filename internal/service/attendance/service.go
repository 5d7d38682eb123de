package attendance

import (
	"context"
	"fmt"

	"github.com/mesai-app/mesai-backend-go/internal/domain/attendance"
	"github.com/mesai-app/mesai-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
}

func NewAttendanceService(repo attendance.AttendanceRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: repo,
	}
}

func toResponse(att attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:       att.ID,
		Date:     att.Date.Format("2006-01-02"),
		Name:     att.Name,
		CheckIn:  att.CheckIn,
		CheckOut: att.CheckOut,
		OnLeave:  att.OnLeave,
	}
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, q attendance.ListQuery) (attendance.ListResult, error) {
	records, total, err := s.AttendanceRepository.List(ctx, q)
	if err != nil {
		return attendance.ListResult{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	data := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		data = append(data, toResponse(rec))
	}

	return attendance.ListResult{
		Data:      data,
		Count:     total,
		Paginated: q.Paginated(),
	}, nil
}

// Get implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Get(ctx context.Context, id int64) (attendance.AttendanceResponse, error) {
	att, err := s.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(att), nil
}

// Create implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Create(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := validator.ParseDateInput(req.Date)

	var onLeave int16
	if req.OnLeave != nil {
		onLeave = *req.OnLeave
	}

	created, err := s.AttendanceRepository.Create(ctx, attendance.Attendance{
		Date:     date,
		Name:     req.Name,
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		OnLeave:  onLeave,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(created), nil
}

// Update implements attendance.AttendanceService. The izin flag is owned
// by SetLeave and survives a full update unchanged.
func (s *AttendanceServiceImpl) Update(ctx context.Context, id int64, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := validator.ParseDateInput(req.Date)

	updated, err := s.AttendanceRepository.Update(ctx, attendance.Attendance{
		ID:       id,
		Date:     date,
		Name:     req.Name,
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(updated), nil
}

// SetLeave implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) SetLeave(ctx context.Context, id int64, req attendance.SetLeaveRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	updated, err := s.AttendanceRepository.SetLeave(ctx, id, req.OnLeave)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(updated), nil
}

// Delete implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.AttendanceRepository.Delete(ctx, id)
}
