package roster

import (
	"context"
	"time"
)

// ShiftRepository - interface for shifts table
type ShiftRepository interface {
	Create(ctx context.Context, shift Shift) (Shift, error)
	GetByID(ctx context.Context, id string) (Shift, error)
	GetByName(ctx context.Context, name string) (Shift, error)
	List(ctx context.Context) ([]Shift, error)
	Update(ctx context.Context, shift Shift) error
	Delete(ctx context.Context, id string) error
}

// RosterEntryRepository - interface for roster_entries table
type RosterEntryRepository interface {
	Create(ctx context.Context, entry RosterEntry) (RosterEntry, error)
	GetByID(ctx context.Context, id string) (RosterEntry, error)
	List(ctx context.Context, filter ListRosterEntriesFilter) ([]RosterEntry, error)
	Update(ctx context.Context, entry RosterEntry) error
	UpdateStatus(ctx context.Context, id string, status RosterEntryStatus, acceptedAt *time.Time) error
	Delete(ctx context.Context, id string) error

	// ExistsForEmployeeOnDate backs the materializer's skip-if-present
	// check for leave-derived entries.
	ExistsForEmployeeOnDate(ctx context.Context, employeeID string, date time.Time) (bool, error)

	// ListApprovedInRange feeds the timesheet generator.
	ListApprovedInRange(ctx context.Context, start, end time.Time, employeeID *string) ([]RosterEntry, error)
}
