package export

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/WNVissie/BurgundyRoster/internal/domain/analytics"
	"github.com/WNVissie/BurgundyRoster/internal/domain/employee"
	"github.com/WNVissie/BurgundyRoster/internal/domain/export"
	"github.com/WNVissie/BurgundyRoster/internal/domain/roster"
	"github.com/WNVissie/BurgundyRoster/internal/domain/timesheet"
)

type ExportServiceImpl struct {
	employee.EmployeeRepository
	roster.RosterEntryRepository
	timesheet.TimesheetRepository
	analyticsService analytics.AnalyticsService
}

func NewExportService(employeeRepository employee.EmployeeRepository, rosterEntryRepository roster.RosterEntryRepository, timesheetRepository timesheet.TimesheetRepository, analyticsService analytics.AnalyticsService) export.ExportService {
	return &ExportServiceImpl{
		EmployeeRepository:    employeeRepository,
		RosterEntryRepository: rosterEntryRepository,
		TimesheetRepository:   timesheetRepository,
		analyticsService:      analyticsService,
	}
}

// ExportEmployees implements export.ExportService.
func (s *ExportServiceImpl) ExportEmployees(ctx context.Context, format export.Format) (export.Result, error) {
	employees, err := s.EmployeeRepository.List(ctx, employee.ListEmployeesFilter{})
	if err != nil {
		return export.Result{}, fmt.Errorf("failed to list employees: %w", err)
	}

	var data []byte
	switch format {
	case export.FormatCSV:
		data, err = employeesToCSV(employees)
	case export.FormatXLSX:
		data, err = employeesToXLSX(employees)
	default:
		return export.Result{}, export.ErrUnsupportedFormat
	}
	if err != nil {
		return export.Result{}, fmt.Errorf("failed to render employee export: %w", err)
	}

	return s.result("employees", format, data), nil
}

// ExportRoster implements export.ExportService.
func (s *ExportServiceImpl) ExportRoster(ctx context.Context, filter roster.ListRosterEntriesFilter, format export.Format) (export.Result, error) {
	entries, err := s.RosterEntryRepository.List(ctx, filter)
	if err != nil {
		return export.Result{}, fmt.Errorf("failed to list roster entries: %w", err)
	}

	var data []byte
	switch format {
	case export.FormatCSV:
		data, err = rosterToCSV(entries)
	case export.FormatXLSX:
		data, err = rosterToXLSX(entries)
	case export.FormatPDF:
		data, err = rosterToPDF(entries)
	default:
		return export.Result{}, export.ErrUnsupportedFormat
	}
	if err != nil {
		return export.Result{}, fmt.Errorf("failed to render roster export: %w", err)
	}

	return s.result("roster", format, data), nil
}

// ExportTimesheets implements export.ExportService.
func (s *ExportServiceImpl) ExportTimesheets(ctx context.Context, filter timesheet.ListTimesheetsFilter, format export.Format) (export.Result, error) {
	timesheets, err := s.TimesheetRepository.List(ctx, filter)
	if err != nil {
		return export.Result{}, fmt.Errorf("failed to list timesheets: %w", err)
	}

	var data []byte
	switch format {
	case export.FormatCSV:
		data, err = timesheetsToCSV(timesheets)
	case export.FormatXLSX:
		data, err = timesheetsToXLSX(timesheets)
	case export.FormatPDF:
		data, err = timesheetsToPDF(timesheets)
	default:
		return export.Result{}, export.ErrUnsupportedFormat
	}
	if err != nil {
		return export.Result{}, fmt.Errorf("failed to render timesheet export: %w", err)
	}

	return s.result("timesheets", format, data), nil
}

// ExportAnalyticsSummary implements export.ExportService.
func (s *ExportServiceImpl) ExportAnalyticsSummary(ctx context.Context, startDate, endDate string) (export.Result, error) {
	dashboard, err := s.analyticsService.GetDashboard(ctx, startDate, endDate)
	if err != nil {
		return export.Result{}, err
	}

	data, err := analyticsToPDF(dashboard)
	if err != nil {
		return export.Result{}, fmt.Errorf("failed to render analytics export: %w", err)
	}

	return s.result("analytics", export.FormatPDF, data), nil
}

func (s *ExportServiceImpl) result(prefix string, format export.Format, data []byte) export.Result {
	unique := uuid.NewString()[:8]
	return export.Result{
		FileName:    export.FileNameFor(prefix, format, time.Now(), unique),
		ContentType: export.ContentTypeFor(format),
		Data:        data,
	}
}
