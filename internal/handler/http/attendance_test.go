package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/mesai-app/mesai-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAttendanceService records the query/requests it receives and returns
// canned results, so handler tests only cover parameter translation and
// response shapes.
type stubAttendanceService struct {
	lastQuery  attendance.ListQuery
	listResult attendance.ListResult
	err        error
}

func (s *stubAttendanceService) List(_ context.Context, q attendance.ListQuery) (attendance.ListResult, error) {
	s.lastQuery = q
	return s.listResult, s.err
}

func (s *stubAttendanceService) Get(_ context.Context, id int64) (attendance.AttendanceResponse, error) {
	if s.err != nil {
		return attendance.AttendanceResponse{}, s.err
	}
	return attendance.AttendanceResponse{ID: id, Name: "A"}, nil
}

func (s *stubAttendanceService) Create(_ context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if s.err != nil {
		return attendance.AttendanceResponse{}, s.err
	}
	var onLeave int16
	if req.OnLeave != nil {
		onLeave = *req.OnLeave
	}
	return attendance.AttendanceResponse{
		ID: 1, Date: "2024-03-01", Name: req.Name,
		CheckIn: req.CheckIn, CheckOut: req.CheckOut, OnLeave: onLeave,
	}, nil
}

func (s *stubAttendanceService) Update(_ context.Context, id int64, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if s.err != nil {
		return attendance.AttendanceResponse{}, s.err
	}
	return attendance.AttendanceResponse{ID: id, Name: req.Name}, nil
}

func (s *stubAttendanceService) SetLeave(_ context.Context, id int64, req attendance.SetLeaveRequest) (attendance.AttendanceResponse, error) {
	if s.err != nil {
		return attendance.AttendanceResponse{}, s.err
	}
	return attendance.AttendanceResponse{ID: id, OnLeave: req.OnLeave}, nil
}

func (s *stubAttendanceService) Delete(_ context.Context, id int64) error {
	return s.err
}

func newTestRouter(svc attendance.AttendanceService) *chi.Mux {
	r := chi.NewRouter()
	h := NewAttendanceHandler(svc)
	r.Route("/api/v1/attendances", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.Get)
			r.Put("/", h.Update)
			r.Patch("/leave", h.SetLeave)
			r.Delete("/", h.Delete)
		})
	})
	return r
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func doRequest(t *testing.T, router http.Handler, method, target string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestListHandler_NormalizesSortParams(t *testing.T) {
	svc := &stubAttendanceService{}
	router := newTestRouter(svc)

	rec, _ := doRequest(t, router, http.MethodGet,
		"/api/v1/attendances?sortBy=bogus&sortDir=sideways", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, attendance.SortByDate, svc.lastQuery.SortBy)
	assert.Equal(t, attendance.SortDesc, svc.lastQuery.SortDir)
}

func TestListHandler_TwoWeeksFlag(t *testing.T) {
	svc := &stubAttendanceService{}
	router := newTestRouter(svc)

	doRequest(t, router, http.MethodGet, "/api/v1/attendances?twoWeeks=true", nil)

	require.NotNil(t, svc.lastQuery.TrailingDays)
	assert.Equal(t, attendance.DefaultTrailingDays, *svc.lastQuery.TrailingDays)

	// Anything other than exactly "true" is ignored
	doRequest(t, router, http.MethodGet, "/api/v1/attendances?twoWeeks=yes", nil)
	assert.Nil(t, svc.lastQuery.TrailingDays)
}

func TestListHandler_MalformedPageTreatedAsAbsent(t *testing.T) {
	svc := &stubAttendanceService{}
	router := newTestRouter(svc)

	doRequest(t, router, http.MethodGet,
		"/api/v1/attendances?page=abc&pageSize=10", nil)

	assert.Nil(t, svc.lastQuery.Page)
	require.NotNil(t, svc.lastQuery.PageSize)
	assert.False(t, svc.lastQuery.Paginated())
}

func TestListHandler_PaginatedResponseShape(t *testing.T) {
	svc := &stubAttendanceService{
		listResult: attendance.ListResult{
			Data:      []attendance.AttendanceResponse{{ID: 1, Name: "A"}},
			Count:     7,
			Paginated: true,
		},
	}
	router := newTestRouter(svc)

	rec, env := doRequest(t, router, http.MethodGet,
		"/api/v1/attendances?page=0&pageSize=1", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var payload attendance.ListAttendanceResponse
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	assert.Equal(t, int64(7), payload.Count)
	assert.Len(t, payload.Data, 1)
}

func TestListHandler_BareListWhenUnpaginated(t *testing.T) {
	svc := &stubAttendanceService{
		listResult: attendance.ListResult{
			Data: []attendance.AttendanceResponse{{ID: 1}, {ID: 2}},
		},
	}
	router := newTestRouter(svc)

	_, env := doRequest(t, router, http.MethodGet, "/api/v1/attendances", nil)

	var payload []attendance.AttendanceResponse
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	assert.Len(t, payload, 2)
}

func TestGetHandler(t *testing.T) {
	svc := &stubAttendanceService{}
	router := newTestRouter(svc)

	rec, env := doRequest(t, router, http.MethodGet, "/api/v1/attendances/5", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var payload attendance.AttendanceResponse
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	assert.Equal(t, int64(5), payload.ID)
}

func TestGetHandler_NotFound(t *testing.T) {
	svc := &stubAttendanceService{err: attendance.ErrAttendanceNotFound}
	router := newTestRouter(svc)

	rec, env := doRequest(t, router, http.MethodGet, "/api/v1/attendances/5", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestCreateHandler(t *testing.T) {
	svc := &stubAttendanceService{}
	router := newTestRouter(svc)

	rec, env := doRequest(t, router, http.MethodPost, "/api/v1/attendances",
		map[string]interface{}{
			"date":  "2024-03-01T00:00:00Z",
			"name":  "Ayşe",
			"giris": "08:00",
			"cikis": "17:00",
		})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)
}

func TestCreateHandler_BadJSON(t *testing.T) {
	svc := &stubAttendanceService{}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendances",
		bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateHandler_InvalidID(t *testing.T) {
	svc := &stubAttendanceService{}
	router := newTestRouter(svc)

	rec, env := doRequest(t, router, http.MethodPut, "/api/v1/attendances/abc",
		map[string]interface{}{"date": "2024-03-01", "name": "A", "giris": "08:00", "cikis": "17:00"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "BAD_REQUEST", env.Error.Code)
}

func TestSetLeaveHandler(t *testing.T) {
	svc := &stubAttendanceService{}
	router := newTestRouter(svc)

	rec, env := doRequest(t, router, http.MethodPatch, "/api/v1/attendances/3/leave",
		map[string]interface{}{"izin": 1})

	assert.Equal(t, http.StatusOK, rec.Code)
	var payload attendance.AttendanceResponse
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	assert.Equal(t, int64(3), payload.ID)
	assert.Equal(t, int16(1), payload.OnLeave)
}

func TestDeleteHandler_NotFound(t *testing.T) {
	svc := &stubAttendanceService{err: attendance.ErrAttendanceNotFound}
	router := newTestRouter(svc)

	rec, env := doRequest(t, router, http.MethodDelete, "/api/v1/attendances/9", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}
