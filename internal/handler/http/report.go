package http

import (
	"net/http"
	"strconv"

	"github.com/mesai-app/mesai-backend-go/internal/domain/report"
	"github.com/mesai-app/mesai-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	WorkedHours(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// WorkedHours implements ReportHandler. A malformed days value falls back
// to the default two-week window.
func (h *reportHandlerImpl) WorkedHours(w http.ResponseWriter, r *http.Request) {
	req := report.WorkedHoursRequest{
		NameFilter: r.URL.Query().Get("q"),
	}

	if d := r.URL.Query().Get("days"); d != "" {
		if days, err := strconv.Atoi(d); err == nil && days > 0 {
			req.Days = days
		}
	}

	result, err := h.reportService.WorkedHours(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
