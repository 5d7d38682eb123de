package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mesai-app/mesai-backend-go/internal/domain/attendance"
	"github.com/mesai-app/mesai-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	SetLeave(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

func parseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

// List implements AttendanceHandler. Sort parameters are normalized, not
// rejected; malformed page/pageSize values are treated as absent, so the
// request falls through to the full listing.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query := attendance.ListQuery{
		TextFilter: r.URL.Query().Get("q"),
		SortBy:     attendance.ParseSortField(r.URL.Query().Get("sortBy")),
		SortDir:    attendance.ParseSortDirection(r.URL.Query().Get("sortDir")),
	}

	if r.URL.Query().Get("twoWeeks") == "true" {
		days := attendance.DefaultTrailingDays
		query.TrailingDays = &days
	}

	if p := r.URL.Query().Get("page"); p != "" {
		if pageNum, err := strconv.Atoi(p); err == nil && pageNum >= 0 {
			query.Page = &pageNum
		}
	}

	if ps := r.URL.Query().Get("pageSize"); ps != "" {
		if size, err := strconv.Atoi(ps); err == nil && size > 0 {
			query.PageSize = &size
		}
	}

	result, err := h.attendanceService.List(ctx, query)
	if err != nil {
		slog.Error("Failed to list attendances", "error", err)
		response.HandleError(w, err)
		return
	}

	if result.Paginated {
		response.Success(w, attendance.ListAttendanceResponse{
			Data:  result.Data,
			Count: result.Count,
		})
		return
	}

	response.Success(w, result.Data)
}

// Get implements AttendanceHandler.
func (h *attendanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		response.BadRequest(w, "Invalid attendance id", nil)
		return
	}

	result, err := h.attendanceService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Create implements AttendanceHandler.
func (h *attendanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req attendance.CreateAttendanceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode create request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance created", result)
}

// Update implements AttendanceHandler.
func (h *attendanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		response.BadRequest(w, "Invalid attendance id", nil)
		return
	}

	var req attendance.UpdateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode update request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SetLeave implements AttendanceHandler.
func (h *attendanceHandlerImpl) SetLeave(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		response.BadRequest(w, "Invalid attendance id", nil)
		return
	}

	var req attendance.SetLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode leave request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.SetLeave(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Delete implements AttendanceHandler.
func (h *attendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		response.BadRequest(w, "Invalid attendance id", nil)
		return
	}

	if err := h.attendanceService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance deleted", nil)
}
