package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/WNVissie/BurgundyRoster/internal/domain/report"
	"github.com/WNVissie/BurgundyRoster/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	EmployeeSearch(w http.ResponseWriter, r *http.Request)
	EmployeeHistory(w http.ResponseWriter, r *http.Request)
	ShiftAcceptance(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// EmployeeSearch implements ReportHandler.
func (h *ReportHandlerImpl) EmployeeSearch(w http.ResponseWriter, r *http.Request) {
	var req report.EmployeeSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("EmployeeSearch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.GenerateEmployeeSearchReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// EmployeeHistory implements ReportHandler.
func (h *ReportHandlerImpl) EmployeeHistory(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	query := r.URL.Query()
	req := report.EmployeeHistoryRequest{
		EmployeeID: employeeID,
		StartDate:  queryParam(query.Get("start_date")),
		EndDate:    queryParam(query.Get("end_date")),
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.GenerateEmployeeHistoryReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ShiftAcceptance implements ReportHandler.
func (h *ReportHandlerImpl) ShiftAcceptance(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := report.ShiftAcceptanceRequest{
		StartDate: query.Get("start_date"),
		EndDate:   query.Get("end_date"),
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.GenerateShiftAcceptanceReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
