package roster

import (
	"context"
)

type RosterService interface {
	// Shifts
	CreateShift(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)
	UpdateShift(ctx context.Context, req UpdateShiftRequest) error
	GetShift(ctx context.Context, id string) (ShiftResponse, error)
	ListShifts(ctx context.Context) ([]ShiftResponse, error)
	DeleteShift(ctx context.Context, id string) error

	// Roster entries
	CreateRosterEntry(ctx context.Context, req CreateRosterEntryRequest) (RosterEntryResponse, error)
	GetRosterEntry(ctx context.Context, id string) (RosterEntryResponse, error)
	ListRosterEntries(ctx context.Context, filter ListRosterEntriesFilter) ([]RosterEntryResponse, error)
	ApproveRosterEntry(ctx context.Context, id string) error
	RejectRosterEntry(ctx context.Context, id string) error
	AcceptRosterEntry(ctx context.Context, id string, employeeID string) error
	DeleteRosterEntry(ctx context.Context, id string) error
}
