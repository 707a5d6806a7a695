package export

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/WNVissie/BurgundyRoster/internal/domain/employee"
	"github.com/WNVissie/BurgundyRoster/internal/domain/roster"
	"github.com/WNVissie/BurgundyRoster/internal/domain/timesheet"
)

func writeCSV(headers []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(headers); err != nil {
		return nil, err
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func employeesToCSV(employees []employee.Employee) ([]byte, error) {
	rows := make([][]string, 0, len(employees))
	for i := range employees {
		e := &employees[i]
		rows = append(rows, []string{
			e.Name,
			e.Surname,
			e.Email,
			deref(e.EmployeeCode),
			string(e.Role),
			deref(e.DesignationName),
			deref(e.AreaName),
			e.AnnualLeaveAllocation.String(),
		})
	}
	return writeCSV(employeeExportHeaders, rows)
}

func rosterToCSV(entries []roster.RosterEntry) ([]byte, error) {
	rows := make([][]string, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		rows = append(rows, []string{
			e.Date.Format("2006-01-02"),
			deref(e.EmployeeName),
			deref(e.ShiftName),
			strconv.FormatFloat(e.Hours, 'f', -1, 64),
			string(e.Status),
			deref(e.Notes),
		})
	}
	return writeCSV(rosterExportHeaders, rows)
}

func timesheetsToCSV(timesheets []timesheet.Timesheet) ([]byte, error) {
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
	return writeCSV(timesheetExportHeaders, rows)
}
