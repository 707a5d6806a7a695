package roster

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/WNVissie/BurgundyRoster/internal/domain/activity"
	"github.com/WNVissie/BurgundyRoster/internal/domain/employee"
	"github.com/WNVissie/BurgundyRoster/internal/domain/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeShiftRepo struct {
	roster.ShiftRepository
	shifts map[string]roster.Shift
}

func (f *fakeShiftRepo) Create(_ context.Context, shift roster.Shift) (roster.Shift, error) {
	shift.ID = "shift-created"
	f.shifts[shift.ID] = shift
	return shift, nil
}

func (f *fakeShiftRepo) GetByID(_ context.Context, id string) (roster.Shift, error) {
	shift, ok := f.shifts[id]
	if !ok {
		return roster.Shift{}, roster.ErrShiftNotFound
	}
	return shift, nil
}

func (f *fakeShiftRepo) Update(_ context.Context, shift roster.Shift) error {
	f.shifts[shift.ID] = shift
	return nil
}

type fakeRosterEntryRepo struct {
	roster.RosterEntryRepository
	entries map[string]roster.RosterEntry
	nextID  int
}

func (f *fakeRosterEntryRepo) Create(_ context.Context, entry roster.RosterEntry) (roster.RosterEntry, error) {
	f.nextID++
	entry.ID = fmt.Sprintf("entry-%d", f.nextID)
	f.entries[entry.ID] = entry
	return entry, nil
}

func (f *fakeRosterEntryRepo) GetByID(_ context.Context, id string) (roster.RosterEntry, error) {
	entry, ok := f.entries[id]
	if !ok {
		return roster.RosterEntry{}, roster.ErrRosterEntryNotFound
	}
	return entry, nil
}

func (f *fakeRosterEntryRepo) UpdateStatus(_ context.Context, id string, status roster.RosterEntryStatus, acceptedAt *time.Time) error {
	entry, ok := f.entries[id]
	if !ok {
		return roster.ErrRosterEntryNotFound
	}
	entry.Status = status
	if acceptedAt != nil {
		entry.AcceptedAt = acceptedAt
	}
	f.entries[id] = entry
	return nil
}

func (f *fakeRosterEntryRepo) ExistsForEmployeeOnDate(_ context.Context, employeeID string, date time.Time) (bool, error) {
	for _, entry := range f.entries {
		if entry.EmployeeID == employeeID && entry.Date.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

type fakeLogRepo struct {
	activity.LogRepository
	actions []string
}

func (f *fakeLogRepo) Create(_ context.Context, log activity.Log) error {
	f.actions = append(f.actions, log.Action)
	return nil
}

type rosterFixture struct {
	service *Service
	shifts  *fakeShiftRepo
	entries *fakeRosterEntryRepo
	logs    *fakeLogRepo
}

func newRosterFixture() *rosterFixture {
	shifts := &fakeShiftRepo{shifts: map[string]roster.Shift{
		"shift-1": {ID: "shift-1", Name: "Morning", StartTime: "06:00", EndTime: "14:00", Hours: 8, Color: "#3498db"},
	}}
	entries := &fakeRosterEntryRepo{entries: map[string]roster.RosterEntry{}}
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", Email: "anna@example.com", Role: employee.RoleEmployee},
	}}
	logs := &fakeLogRepo{}
	return &rosterFixture{
		service: NewService(nil, shifts, entries, employees, logs),
		shifts:  shifts,
		entries: entries,
		logs:    logs,
	}
}

func (f *rosterFixture) createEntry(t *testing.T, date string) roster.RosterEntryResponse {
	t.Helper()
	entry, err := f.service.CreateRosterEntry(context.Background(), roster.CreateRosterEntryRequest{
		EmployeeID: "emp-1",
		ShiftID:    "shift-1",
		Date:       date,
		Hours:      8,
	})
	require.NoError(t, err)
	return entry
}

func TestCreateRosterEntry(t *testing.T) {
	f := newRosterFixture()

	entry := f.createEntry(t, "2024-06-10")

	assert.Equal(t, "emp-1", entry.EmployeeID)
	assert.Equal(t, string(roster.RosterEntryStatusPending), entry.Status)
	assert.Contains(t, f.logs.actions, "roster.create")
}

func TestCreateRosterEntry_DuplicateDay(t *testing.T) {
	f := newRosterFixture()
	f.createEntry(t, "2024-06-10")

	_, err := f.service.CreateRosterEntry(context.Background(), roster.CreateRosterEntryRequest{
		EmployeeID: "emp-1",
		ShiftID:    "shift-1",
		Date:       "2024-06-10",
		Hours:      8,
	})

	assert.ErrorIs(t, err, roster.ErrRosterEntryExists)
}

func TestCreateRosterEntry_UnknownEmployee(t *testing.T) {
	f := newRosterFixture()

	_, err := f.service.CreateRosterEntry(context.Background(), roster.CreateRosterEntryRequest{
		EmployeeID: "ghost",
		ShiftID:    "shift-1",
		Date:       "2024-06-10",
		Hours:      8,
	})

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestApproveThenAcceptRosterEntry(t *testing.T) {
	f := newRosterFixture()
	entry := f.createEntry(t, "2024-06-10")

	require.NoError(t, f.service.ApproveRosterEntry(context.Background(), entry.ID))
	require.NoError(t, f.service.AcceptRosterEntry(context.Background(), entry.ID, "emp-1"))

	stored := f.entries.entries[entry.ID]
	assert.Equal(t, roster.RosterEntryStatusAccepted, stored.Status)
	require.NotNil(t, stored.AcceptedAt)
	assert.Contains(t, f.logs.actions, "roster.accept")
}

func TestAcceptRosterEntry_NotOwner(t *testing.T) {
	f := newRosterFixture()
	entry := f.createEntry(t, "2024-06-10")
	require.NoError(t, f.service.ApproveRosterEntry(context.Background(), entry.ID))

	err := f.service.AcceptRosterEntry(context.Background(), entry.ID, "emp-2")

	assert.ErrorIs(t, err, roster.ErrRosterEntryNotOwned)
}

func TestAcceptRosterEntry_NotApproved(t *testing.T) {
	f := newRosterFixture()
	entry := f.createEntry(t, "2024-06-10")

	err := f.service.AcceptRosterEntry(context.Background(), entry.ID, "emp-1")

	assert.ErrorIs(t, err, roster.ErrRosterEntryNotApproved)
}

func TestApproveRosterEntry_AlreadyDecided(t *testing.T) {
	f := newRosterFixture()
	entry := f.createEntry(t, "2024-06-10")
	require.NoError(t, f.service.RejectRosterEntry(context.Background(), entry.ID))

	err := f.service.ApproveRosterEntry(context.Background(), entry.ID)

	assert.ErrorIs(t, err, roster.ErrInvalidEntryStatus)
}

func TestUpdateShift_PartialFields(t *testing.T) {
	f := newRosterFixture()

	color := "#2ecc71"
	err := f.service.UpdateShift(context.Background(), roster.UpdateShiftRequest{ID: "shift-1", Color: &color})

	require.NoError(t, err)
	assert.Equal(t, "#2ecc71", f.shifts.shifts["shift-1"].Color)
	assert.Equal(t, "Morning", f.shifts.shifts["shift-1"].Name)
}
