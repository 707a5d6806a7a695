package timesheet

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WNVissie/BurgundyRoster/internal/domain/activity"
	"github.com/WNVissie/BurgundyRoster/internal/domain/roster"
	"github.com/WNVissie/BurgundyRoster/internal/domain/timesheet"
)

// ===== IN-MEMORY FAKES =====

type fakeTimesheetRepo struct {
	timesheet.TimesheetRepository
	timesheets map[string]timesheet.Timesheet
	nextID     int
}

func newFakeTimesheetRepo() *fakeTimesheetRepo {
	return &fakeTimesheetRepo{timesheets: make(map[string]timesheet.Timesheet)}
}

func (f *fakeTimesheetRepo) Create(_ context.Context, ts timesheet.Timesheet) (timesheet.Timesheet, error) {
	f.nextID++
	ts.ID = fmt.Sprintf("ts-%d", f.nextID)
	f.timesheets[ts.ID] = ts
	return ts, nil
}

func (f *fakeTimesheetRepo) GetByID(_ context.Context, id string) (timesheet.Timesheet, error) {
	ts, ok := f.timesheets[id]
	if !ok {
		return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
	}
	return ts, nil
}

func (f *fakeTimesheetRepo) UpdateStatus(_ context.Context, id string, status timesheet.TimesheetStatus) error {
	ts, ok := f.timesheets[id]
	if !ok {
		return timesheet.ErrTimesheetNotFound
	}
	ts.Status = status
	f.timesheets[id] = ts
	return nil
}

func (f *fakeTimesheetRepo) ExistsForRoster(_ context.Context, rosterID string) (bool, error) {
	for _, ts := range f.timesheets {
		if ts.RosterID == rosterID {
			return true, nil
		}
	}
	return false, nil
}

type fakeRosterEntryRepo struct {
	roster.RosterEntryRepository
	entries []roster.RosterEntry
}

func (f *fakeRosterEntryRepo) ListApprovedInRange(_ context.Context, start, end time.Time, employeeID *string) ([]roster.RosterEntry, error) {
	var out []roster.RosterEntry
	for _, entry := range f.entries {
		if entry.Status != roster.RosterEntryStatusApproved {
			continue
		}
		if entry.Date.Before(start) || entry.Date.After(end) {
			continue
		}
		if employeeID != nil && entry.EmployeeID != *employeeID {
			continue
		}
		out = append(out, entry)
	}
	return out, nil
}

type fakeLogRepo struct {
	activity.LogRepository
}

func (f *fakeLogRepo) Create(_ context.Context, _ activity.Log) error { return nil }

func day(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return d
}

func approvedEntry(id, employeeID string, date time.Time, hours float64) roster.RosterEntry {
	return roster.RosterEntry{
		ID:         id,
		EmployeeID: employeeID,
		Date:       date,
		Hours:      hours,
		Status:     roster.RosterEntryStatusApproved,
	}
}

// ===== GENERATOR =====

func TestGenerate(t *testing.T) {
	t.Parallel()
	rosterRepo := &fakeRosterEntryRepo{entries: []roster.RosterEntry{
		approvedEntry("re-1", "emp-1", day(t, "2024-06-10"), 8),
		approvedEntry("re-2", "emp-1", day(t, "2024-06-11"), 8),
		approvedEntry("re-3", "emp-2", day(t, "2024-06-10"), 6),
		{ID: "re-4", EmployeeID: "emp-1", Date: day(t, "2024-06-12"), Hours: 8, Status: roster.RosterEntryStatusPending},
	}}
	tsRepo := newFakeTimesheetRepo()
	service := NewService(nil, tsRepo, rosterRepo, &fakeLogRepo{})

	created, err := service.generate(context.Background(), day(t, "2024-06-10"), day(t, "2024-06-12"), nil)

	require.NoError(t, err)
	assert.Equal(t, 3, created)
	assert.Len(t, tsRepo.timesheets, 3)

	for _, ts := range tsRepo.timesheets {
		assert.Equal(t, timesheet.TimesheetStatusPending, ts.Status)
	}
}

func TestGenerate_Idempotent(t *testing.T) {
	t.Parallel()
	rosterRepo := &fakeRosterEntryRepo{entries: []roster.RosterEntry{
		approvedEntry("re-1", "emp-1", day(t, "2024-06-10"), 8),
		approvedEntry("re-2", "emp-1", day(t, "2024-06-11"), 8),
	}}
	tsRepo := newFakeTimesheetRepo()
	service := NewService(nil, tsRepo, rosterRepo, &fakeLogRepo{})
	ctx := context.Background()

	first, err := service.generate(ctx, day(t, "2024-06-10"), day(t, "2024-06-11"), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, first)

	// Second run over the same range creates nothing.
	second, err := service.generate(ctx, day(t, "2024-06-10"), day(t, "2024-06-11"), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, second)
	assert.Len(t, tsRepo.timesheets, 2)
}

func TestGenerate_FillsGapsOnly(t *testing.T) {
	t.Parallel()
	rosterRepo := &fakeRosterEntryRepo{entries: []roster.RosterEntry{
		approvedEntry("re-1", "emp-1", day(t, "2024-06-10"), 8),
	}}
	tsRepo := newFakeTimesheetRepo()
	service := NewService(nil, tsRepo, rosterRepo, &fakeLogRepo{})
	ctx := context.Background()

	_, err := service.generate(ctx, day(t, "2024-06-10"), day(t, "2024-06-10"), nil)
	require.NoError(t, err)

	// A new approved entry appears; only it gets a timesheet.
	rosterRepo.entries = append(rosterRepo.entries, approvedEntry("re-2", "emp-1", day(t, "2024-06-11"), 8))

	created, err := service.generate(ctx, day(t, "2024-06-10"), day(t, "2024-06-11"), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, created)
}

func TestGenerate_EmployeeFilter(t *testing.T) {
	t.Parallel()
	rosterRepo := &fakeRosterEntryRepo{entries: []roster.RosterEntry{
		approvedEntry("re-1", "emp-1", day(t, "2024-06-10"), 8),
		approvedEntry("re-2", "emp-2", day(t, "2024-06-10"), 8),
	}}
	tsRepo := newFakeTimesheetRepo()
	service := NewService(nil, tsRepo, rosterRepo, &fakeLogRepo{})

	empID := "emp-2"
	created, err := service.generate(context.Background(), day(t, "2024-06-10"), day(t, "2024-06-10"), &empID)

	require.NoError(t, err)
	assert.Equal(t, 1, created)
	for _, ts := range tsRepo.timesheets {
		assert.Equal(t, "emp-2", ts.EmployeeID)
	}
}

func TestGenerate_CarriesRosterHours(t *testing.T) {
	t.Parallel()
	rosterRepo := &fakeRosterEntryRepo{entries: []roster.RosterEntry{
		approvedEntry("re-1", "emp-1", day(t, "2024-06-10"), 6.5),
	}}
	tsRepo := newFakeTimesheetRepo()
	service := NewService(nil, tsRepo, rosterRepo, &fakeLogRepo{})

	_, err := service.generate(context.Background(), day(t, "2024-06-10"), day(t, "2024-06-10"), nil)

	require.NoError(t, err)
	require.Len(t, tsRepo.timesheets, 1)
	for _, ts := range tsRepo.timesheets {
		assert.Equal(t, 6.5, ts.HoursWorked)
		assert.Equal(t, "re-1", ts.RosterID)
	}
}

// ===== STATUS TRANSITIONS =====

func TestApproveTimesheet(t *testing.T) {
	t.Parallel()
	tsRepo := newFakeTimesheetRepo()
	service := NewService(nil, tsRepo, &fakeRosterEntryRepo{}, &fakeLogRepo{})
	ctx := context.Background()

	created, err := tsRepo.Create(ctx, timesheet.Timesheet{EmployeeID: "emp-1", RosterID: "re-1", Status: timesheet.TimesheetStatusPending})
	require.NoError(t, err)

	require.NoError(t, service.ApproveTimesheet(ctx, created.ID))

	updated, err := tsRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, timesheet.TimesheetStatusApproved, updated.Status)

	// Approving twice fails: no longer pending.
	assert.ErrorIs(t, service.ApproveTimesheet(ctx, created.ID), timesheet.ErrTimesheetNotPending)
}

func TestAcceptTimesheet(t *testing.T) {
	t.Parallel()
	tsRepo := newFakeTimesheetRepo()
	service := NewService(nil, tsRepo, &fakeRosterEntryRepo{}, &fakeLogRepo{})
	ctx := context.Background()

	created, err := tsRepo.Create(ctx, timesheet.Timesheet{EmployeeID: "emp-1", RosterID: "re-1", Status: timesheet.TimesheetStatusApproved})
	require.NoError(t, err)

	assert.ErrorIs(t, service.AcceptTimesheet(ctx, created.ID, "emp-2"), timesheet.ErrTimesheetNotOwned)

	require.NoError(t, service.AcceptTimesheet(ctx, created.ID, "emp-1"))

	updated, err := tsRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, timesheet.TimesheetStatusAccepted, updated.Status)
}

func TestAcceptTimesheet_NotApproved(t *testing.T) {
	t.Parallel()
	tsRepo := newFakeTimesheetRepo()
	service := NewService(nil, tsRepo, &fakeRosterEntryRepo{}, &fakeLogRepo{})
	ctx := context.Background()

	created, err := tsRepo.Create(ctx, timesheet.Timesheet{EmployeeID: "emp-1", RosterID: "re-1", Status: timesheet.TimesheetStatusPending})
	require.NoError(t, err)

	assert.ErrorIs(t, service.AcceptTimesheet(ctx, created.ID, "emp-1"), timesheet.ErrInvalidStatus)
}
