package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/WNVissie/BurgundyRoster/internal/domain/export"
	"github.com/WNVissie/BurgundyRoster/internal/domain/roster"
	"github.com/WNVissie/BurgundyRoster/internal/domain/timesheet"
	"github.com/WNVissie/BurgundyRoster/internal/handler/http/response"
)

type ExportHandler interface {
	Employees(w http.ResponseWriter, r *http.Request)
	Roster(w http.ResponseWriter, r *http.Request)
	Timesheets(w http.ResponseWriter, r *http.Request)
	AnalyticsSummary(w http.ResponseWriter, r *http.Request)
}

type ExportHandlerImpl struct {
	exportService export.ExportService
}

func NewExportHandler(exportService export.ExportService) ExportHandler {
	return &ExportHandlerImpl{exportService: exportService}
}

// Employees implements ExportHandler.
func (h *ExportHandlerImpl) Employees(w http.ResponseWriter, r *http.Request) {
	format := exportFormat(r)

	result, err := h.exportService.ExportEmployees(r.Context(), format)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeExport(w, result)
}

// Roster implements ExportHandler.
func (h *ExportHandlerImpl) Roster(w http.ResponseWriter, r *http.Request) {
	format := exportFormat(r)
	query := r.URL.Query()

	startDate, err := dateParam(query.Get("start_date"))
	if err != nil {
		response.BadRequest(w, "Invalid start_date, expected YYYY-MM-DD", nil)
		return
	}
	endDate, err := dateParam(query.Get("end_date"))
	if err != nil {
		response.BadRequest(w, "Invalid end_date, expected YYYY-MM-DD", nil)
		return
	}

	filter := roster.ListRosterEntriesFilter{
		EmployeeID: queryParam(query.Get("employee_id")),
		StartDate:  startDate,
		EndDate:    endDate,
		Status:     queryParam(query.Get("status")),
		AreaID:     queryParam(query.Get("area_id")),
	}

	result, err := h.exportService.ExportRoster(r.Context(), filter, format)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeExport(w, result)
}

// Timesheets implements ExportHandler.
func (h *ExportHandlerImpl) Timesheets(w http.ResponseWriter, r *http.Request) {
	format := exportFormat(r)
	query := r.URL.Query()

	startDate, err := dateParam(query.Get("start_date"))
	if err != nil {
		response.BadRequest(w, "Invalid start_date, expected YYYY-MM-DD", nil)
		return
	}
	endDate, err := dateParam(query.Get("end_date"))
	if err != nil {
		response.BadRequest(w, "Invalid end_date, expected YYYY-MM-DD", nil)
		return
	}

	filter := timesheet.ListTimesheetsFilter{
		EmployeeID: queryParam(query.Get("employee_id")),
		Status:     queryParam(query.Get("status")),
		StartDate:  startDate,
		EndDate:    endDate,
	}

	result, err := h.exportService.ExportTimesheets(r.Context(), filter, format)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeExport(w, result)
}

// AnalyticsSummary implements ExportHandler.
func (h *ExportHandlerImpl) AnalyticsSummary(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	result, err := h.exportService.ExportAnalyticsSummary(r.Context(), query.Get("start_date"), query.Get("end_date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeExport(w, result)
}

// exportFormat reads the requested format, defaulting to CSV.
func exportFormat(r *http.Request) export.Format {
	format := r.URL.Query().Get("format")
	if format == "" {
		return export.FormatCSV
	}
	return export.Format(format)
}

// writeExport streams a generated file as an attachment.
func writeExport(w http.ResponseWriter, result export.Result) {
	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Data)))
	w.WriteHeader(http.StatusOK)
	w.Write(result.Data)
}
