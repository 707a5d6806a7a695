package export

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/go-pdf/fpdf"

	"github.com/WNVissie/BurgundyRoster/internal/domain/analytics"
	"github.com/WNVissie/BurgundyRoster/internal/domain/roster"
	"github.com/WNVissie/BurgundyRoster/internal/domain/timesheet"
)

func newPDF(title string) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	pdf.Ln(2)
	return pdf
}

// pdfTable renders a simple bordered table with a shaded header row.
func pdfTable(pdf *fpdf.Fpdf, headers []string, widths []float64, rows [][]string) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 7, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		for i, value := range row {
			pdf.CellFormat(widths[i], 6, value, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

func pdfBytes(pdf *fpdf.Fpdf) ([]byte, error) {
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func rosterToPDF(entries []roster.RosterEntry) ([]byte, error) {
	pdf := newPDF("Shift Roster")

	rows := make([][]string, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		rows = append(rows, []string{
			e.Date.Format("2006-01-02"),
			deref(e.EmployeeName),
			deref(e.ShiftName),
			strconv.FormatFloat(e.Hours, 'f', -1, 64),
			string(e.Status),
		})
	}
	pdfTable(pdf, []string{"Date", "Employee", "Shift", "Hours", "Status"}, []float64{28, 60, 40, 22, 30}, rows)

	return pdfBytes(pdf)
}

func timesheetsToPDF(timesheets []timesheet.Timesheet) ([]byte, error) {
	pdf := newPDF("Timesheets")

	rows := make([][]string, 0, len(timesheets))
	for i := range timesheets {
		t := &timesheets[i]
		rows = append(rows, []string{
			t.Date.Format("2006-01-02"),
			deref(t.EmployeeName),
			deref(t.ShiftName),
			strconv.FormatFloat(t.HoursWorked, 'f', -1, 64),
			t.Status.String(),
		})
	}
	pdfTable(pdf, []string{"Date", "Employee", "Shift", "Hours Worked", "Status"}, []float64{28, 60, 40, 28, 30}, rows)

	return pdfBytes(pdf)
}

func analyticsToPDF(dashboard *analytics.DashboardResponse) ([]byte, error) {
	pdf := newPDF("Workforce Summary")

	line := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(70, 7, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Headcount", "", 1, "L", false, 0, "")
	line("Total employees", strconv.FormatInt(dashboard.EmployeeSummary.TotalEmployees, 10))
	line("Admins", strconv.FormatInt(dashboard.EmployeeSummary.Admins, 10))
	line("Managers", strconv.FormatInt(dashboard.EmployeeSummary.Managers, 10))
	line("Employees", strconv.FormatInt(dashboard.EmployeeSummary.Employees, 10))
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Roster for %s", dashboard.TodayRoster.Date), "", 1, "L", false, 0, "")
	line("On shift", strconv.FormatInt(dashboard.TodayRoster.OnShift, 10))
	line("On leave", strconv.FormatInt(dashboard.TodayRoster.OnLeave, 10))
	line("Available", strconv.FormatInt(dashboard.TodayRoster.Available, 10))
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Pending approvals", "", 1, "L", false, 0, "")
	line("Leave requests", strconv.FormatInt(dashboard.PendingApprovals.LeaveRequests, 10))
	line("Roster entries", strconv.FormatInt(dashboard.PendingApprovals.RosterEntries, 10))
	line("Timesheets", strconv.FormatInt(dashboard.PendingApprovals.Timesheets, 10))
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Hours %s to %s", dashboard.HoursSummary.StartDate, dashboard.HoursSummary.EndDate), "", 1, "L", false, 0, "")
	line("Scheduled hours", strconv.FormatFloat(dashboard.HoursSummary.ScheduledHours, 'f', 2, 64))
	line("Worked hours", strconv.FormatFloat(dashboard.HoursSummary.WorkedHours, 'f', 2, 64))

	return pdfBytes(pdf)
}
