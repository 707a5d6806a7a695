package report

import (
	"context"
	"fmt"
	"time"

	"github.com/WNVissie/BurgundyRoster/internal/domain/employee"
	"github.com/WNVissie/BurgundyRoster/internal/domain/report"
)

type ReportServiceImpl struct {
	report.ReportRepository
	employee.EmployeeRepository
}

func NewReportService(reportRepository report.ReportRepository, employeeRepository employee.EmployeeRepository) report.ReportService {
	return &ReportServiceImpl{
		ReportRepository:   reportRepository,
		EmployeeRepository: employeeRepository,
	}
}

// GenerateEmployeeSearchReport implements report.ReportService.
func (s *ReportServiceImpl) GenerateEmployeeSearchReport(ctx context.Context, req report.EmployeeSearchRequest) (report.EmployeeSearchReport, error) {
	date := time.Now()
	if req.Date != nil {
		parsed, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return report.EmployeeSearchReport{}, fmt.Errorf("failed to parse date: %w", err)
		}
		date = parsed
	}

	rows, err := s.ReportRepository.GetEmployeeSearchRows(ctx, req, date)
	if err != nil {
		return report.EmployeeSearchReport{}, fmt.Errorf("failed to get employee search rows: %w", err)
	}

	return report.EmployeeSearchReport{
		Date:        date.Format("2006-01-02"),
		GeneratedAt: time.Now().Format(time.RFC3339),
		Employees:   rows,
	}, nil
}

// GenerateEmployeeHistoryReport implements report.ReportService.
func (s *ReportServiceImpl) GenerateEmployeeHistoryReport(ctx context.Context, req report.EmployeeHistoryRequest) (report.EmployeeHistoryReport, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return report.EmployeeHistoryReport{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	var start, end *time.Time
	if req.StartDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			return report.EmployeeHistoryReport{}, fmt.Errorf("failed to parse start date: %w", err)
		}
		start = &parsed
	}
	if req.EndDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return report.EmployeeHistoryReport{}, fmt.Errorf("failed to parse end date: %w", err)
		}
		end = &parsed
	}

	rows, err := s.ReportRepository.GetEmployeeHistoryRows(ctx, req.EmployeeID, start, end)
	if err != nil {
		return report.EmployeeHistoryReport{}, fmt.Errorf("failed to get employee history rows: %w", err)
	}

	var totalHours float64
	for _, row := range rows {
		totalHours += row.Hours
	}

	return report.EmployeeHistoryReport{
		EmployeeID:   emp.ID,
		EmployeeName: emp.FullName(),
		GeneratedAt:  time.Now().Format(time.RFC3339),
		TotalHours:   totalHours,
		Entries:      rows,
	}, nil
}

// GenerateShiftAcceptanceReport implements report.ReportService.
func (s *ReportServiceImpl) GenerateShiftAcceptanceReport(ctx context.Context, req report.ShiftAcceptanceRequest) (report.ShiftAcceptanceReport, error) {
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return report.ShiftAcceptanceReport{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return report.ShiftAcceptanceReport{}, fmt.Errorf("failed to parse end date: %w", err)
	}
	if end.Before(start) {
		return report.ShiftAcceptanceReport{}, report.ErrInvalidDateRange
	}

	rows, err := s.ReportRepository.GetShiftAcceptanceRows(ctx, start, end)
	if err != nil {
		return report.ShiftAcceptanceReport{}, fmt.Errorf("failed to get shift acceptance rows: %w", err)
	}

	return report.ShiftAcceptanceReport{
		PeriodStart: req.StartDate,
		PeriodEnd:   req.EndDate,
		GeneratedAt: time.Now().Format(time.RFC3339),
		Shifts:      rows,
	}, nil
}
