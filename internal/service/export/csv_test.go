package export

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WNVissie/BurgundyRoster/internal/domain/employee"
	"github.com/WNVissie/BurgundyRoster/internal/domain/roster"
)

func strPtr(s string) *string { return &s }

func TestEmployeesToCSV(t *testing.T) {
	t.Parallel()

	employees := []employee.Employee{
		{
			Name:                  "Thandi",
			Surname:               "Nkosi",
			Email:                 "thandi@example.com",
			EmployeeCode:          strPtr("EMP-001"),
			Role:                  employee.RoleManager,
			DesignationName:       strPtr("Shift Supervisor"),
			AnnualLeaveAllocation: decimal.NewFromInt(20),
		},
		{
			Name:                  "Pieter",
			Surname:               "van Wyk",
			Email:                 "pieter@example.com",
			Role:                  employee.RoleEmployee,
			AnnualLeaveAllocation: decimal.NewFromInt(15),
		},
	}

	data, err := employeesToCSV(employees)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, employeeExportHeaders, records[0])
	assert.Equal(t, []string{"Thandi", "Nkosi", "thandi@example.com", "EMP-001", "manager", "Shift Supervisor", "", "20"}, records[1])
	assert.Equal(t, "van Wyk", records[2][1])
	assert.Equal(t, "15", records[2][7])
}

func TestRosterToCSV(t *testing.T) {
	t.Parallel()

	date, err := time.Parse("2006-01-02", "2024-06-10")
	require.NoError(t, err)

	entries := []roster.RosterEntry{
		{
			Date:         date,
			EmployeeName: strPtr("Thandi Nkosi"),
			ShiftName:    strPtr("Day Shift"),
			Hours:        8.5,
			Status:       roster.RosterEntryStatusAccepted,
		},
	}

	data, err := rosterToCSV(entries)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"2024-06-10", "Thandi Nkosi", "Day Shift", "8.5", "accepted", ""}, records[1])
}

func TestEmployeesToCSV_Empty(t *testing.T) {
	t.Parallel()

	data, err := employeesToCSV(nil)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, employeeExportHeaders, records[0])
}
