package export

import (
	"github.com/xuri/excelize/v2"

	"github.com/WNVissie/BurgundyRoster/internal/domain/employee"
	"github.com/WNVissie/BurgundyRoster/internal/domain/roster"
	"github.com/WNVissie/BurgundyRoster/internal/domain/timesheet"
)

var (
	employeeExportHeaders  = []string{"Name", "Surname", "Email", "Employee Code", "Role", "Designation", "Area of Responsibility", "Annual Leave Allocation"}
	rosterExportHeaders    = []string{"Date", "Employee", "Shift", "Hours", "Status", "Notes"}
	timesheetExportHeaders = []string{"Date", "Employee", "Shift", "Hours Worked", "Status"}
)

func writeColumn(f *excelize.File, sheet string, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}

func writeHeader(f *excelize.File, sheet string, headers []string) error {
	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Font:      &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return err
	}

	cellFirst, err := excelize.CoordinatesToCellName(1, 1)
	if err != nil {
		return err
	}
	cellLast, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, cellFirst, cellLast, style); err != nil {
		return err
	}

	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 22); err != nil {
		return err
	}

	for idx, value := range headers {
		if err := writeColumn(f, sheet, idx+1, 1, value); err != nil {
			return err
		}
	}
	return nil
}

// writeSheet renders a single-sheet workbook with a styled header row.
func writeSheet(sheetName string, headers []string, rows [][]interface{}) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	if err := writeHeader(f, sheet, headers); err != nil {
		return nil, err
	}

	for rowIdx, row := range rows {
		for colIdx, value := range row {
			if err := writeColumn(f, sheet, colIdx+1, rowIdx+2, value); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SetSheetName(sheet, sheetName); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func employeesToXLSX(employees []employee.Employee) ([]byte, error) {
	rows := make([][]interface{}, 0, len(employees))
	for i := range employees {
		e := &employees[i]
		rows = append(rows, []interface{}{
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
	return writeSheet("Employees", employeeExportHeaders, rows)
}

func rosterToXLSX(entries []roster.RosterEntry) ([]byte, error) {
	rows := make([][]interface{}, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		rows = append(rows, []interface{}{
			e.Date.Format("2006-01-02"),
			deref(e.EmployeeName),
			deref(e.ShiftName),
			e.Hours,
			string(e.Status),
			deref(e.Notes),
		})
	}
	return writeSheet("Roster", rosterExportHeaders, rows)
}

func timesheetsToXLSX(timesheets []timesheet.Timesheet) ([]byte, error) {
	rows := make([][]interface{}, 0, len(timesheets))
	for i := range timesheets {
		t := &timesheets[i]
		rows = append(rows, []interface{}{
			t.Date.Format("2006-01-02"),
			deref(t.EmployeeName),
			deref(t.ShiftName),
			t.HoursWorked,
			t.Status.String(),
		})
	}
	return writeSheet("Timesheets", timesheetExportHeaders, rows)
}
