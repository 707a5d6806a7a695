package leave

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WNVissie/BurgundyRoster/internal/domain/activity"
	"github.com/WNVissie/BurgundyRoster/internal/domain/employee"
	"github.com/WNVissie/BurgundyRoster/internal/domain/leave"
	"github.com/WNVissie/BurgundyRoster/internal/domain/roster"
)

// ===== IN-MEMORY FAKES =====

type fakeLeaveRequestRepo struct {
	requests  map[string]leave.LeaveRequest
	nextID    int
	failGuard bool
}

func newFakeLeaveRequestRepo() *fakeLeaveRequestRepo {
	return &fakeLeaveRequestRepo{requests: make(map[string]leave.LeaveRequest)}
}

func (f *fakeLeaveRequestRepo) Create(_ context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	f.nextID++
	request.ID = fmt.Sprintf("lr-%d", f.nextID)
	request.CreatedAt = time.Now()
	request.UpdatedAt = request.CreatedAt
	f.requests[request.ID] = request
	return request, nil
}

func (f *fakeLeaveRequestRepo) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	request, ok := f.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return request, nil
}

func (f *fakeLeaveRequestRepo) List(_ context.Context, filter leave.ListLeaveRequestsFilter) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, request := range f.requests {
		if filter.EmployeeID != nil && request.EmployeeID != *filter.EmployeeID {
			continue
		}
		out = append(out, request)
	}
	return out, nil
}

func (f *fakeLeaveRequestRepo) SumAuthorisedDays(_ context.Context, employeeID string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, request := range f.requests {
		if request.EmployeeID == employeeID && request.Status == leave.LeaveRequestStatusAuthorised {
			sum = sum.Add(decimal.NewFromInt(int64(request.Days)))
		}
	}
	return sum, nil
}

func (f *fakeLeaveRequestRepo) UpdateStatusFrom(_ context.Context, request leave.LeaveRequest, expected leave.LeaveRequestStatus) (bool, error) {
	if f.failGuard {
		return false, nil
	}
	current, ok := f.requests[request.ID]
	if !ok || current.Status != expected {
		return false, nil
	}
	f.requests[request.ID] = request
	return true, nil
}

func (f *fakeLeaveRequestRepo) Delete(_ context.Context, id string) error {
	delete(f.requests, id)
	return nil
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

type fakeShiftRepo struct {
	roster.ShiftRepository
}

func (f *fakeShiftRepo) GetByName(_ context.Context, name string) (roster.Shift, error) {
	if name != roster.OnLeaveShiftName {
		return roster.Shift{}, roster.ErrShiftNotFound
	}
	return roster.Shift{ID: "shift-on-leave", Name: name, Hours: 0}, nil
}

type fakeRosterEntryRepo struct {
	roster.RosterEntryRepository
	existing map[string]bool
	created  []roster.RosterEntry
}

func newFakeRosterEntryRepo() *fakeRosterEntryRepo {
	return &fakeRosterEntryRepo{existing: make(map[string]bool)}
}

func rosterKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (f *fakeRosterEntryRepo) ExistsForEmployeeOnDate(_ context.Context, employeeID string, date time.Time) (bool, error) {
	return f.existing[rosterKey(employeeID, date)], nil
}

func (f *fakeRosterEntryRepo) Create(_ context.Context, entry roster.RosterEntry) (roster.RosterEntry, error) {
	key := rosterKey(entry.EmployeeID, entry.Date)
	if f.existing[key] {
		return roster.RosterEntry{}, roster.ErrRosterEntryExists
	}
	f.existing[key] = true
	entry.ID = fmt.Sprintf("re-%d", len(f.created)+1)
	f.created = append(f.created, entry)
	return entry, nil
}

type fakeLogRepo struct {
	activity.LogRepository
	actions []string
}

func (f *fakeLogRepo) Create(_ context.Context, log activity.Log) error {
	f.actions = append(f.actions, log.Action)
	return nil
}

type leaveFixture struct {
	service  *Service
	requests *fakeLeaveRequestRepo
	roster   *fakeRosterEntryRepo
	logs     *fakeLogRepo
}

func newLeaveFixture() *leaveFixture {
	requests := newFakeLeaveRequestRepo()
	rosterRepo := newFakeRosterEntryRepo()
	logs := &fakeLogRepo{}
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", Role: employee.RoleEmployee, AnnualLeaveAllocation: decimal.NewFromInt(20)},
		"emp-2": {ID: "emp-2", Role: employee.RoleEmployee, AnnualLeaveAllocation: decimal.NewFromInt(20)},
		"mgr-1": {ID: "mgr-1", Role: employee.RoleManager, AnnualLeaveAllocation: decimal.NewFromInt(20)},
	}}

	return &leaveFixture{
		service:  NewService(nil, requests, employees, &fakeShiftRepo{}, rosterRepo, logs),
		requests: requests,
		roster:   rosterRepo,
		logs:     logs,
	}
}

func (fx *leaveFixture) actor(t *testing.T, id string) employee.Employee {
	t.Helper()
	emp, err := fx.service.EmployeeRepository.GetByID(context.Background(), id)
	require.NoError(t, err)
	return emp
}

func (fx *leaveFixture) addRequest(t *testing.T, employeeID string, status leave.LeaveRequestStatus, start, end string) leave.LeaveRequest {
	t.Helper()
	startDate, err := time.Parse("2006-01-02", start)
	require.NoError(t, err)
	endDate, err := time.Parse("2006-01-02", end)
	require.NoError(t, err)

	created, err := fx.requests.Create(context.Background(), leave.LeaveRequest{
		EmployeeID: employeeID,
		LeaveType:  leave.LeaveTypePaid,
		StartDate:  startDate,
		EndDate:    endDate,
		Days:       leave.SpanDays(startDate, endDate),
		Status:     status,
	})
	require.NoError(t, err)
	return created
}

// ===== SUBMIT =====

func TestSubmitLeaveRequest(t *testing.T) {
	t.Parallel()
	fx := newLeaveFixture()
	ctx := context.Background()

	// 5 days already authorised against the 20-day allocation.
	fx.addRequest(t, "emp-1", leave.LeaveRequestStatusAuthorised, "2024-03-04", "2024-03-08")

	resp, err := fx.service.SubmitLeaveRequest(ctx, leave.SubmitLeaveRequestRequest{
		EmployeeID: "emp-1",
		LeaveType:  "paid",
		StartDate:  "2024-06-10",
		EndDate:    "2024-06-12",
	})

	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, 3, resp.Days)
	// Prospective snapshot: 20 - 5 - 3.
	assert.Equal(t, "12", resp.RemainingDaysSnapshot)
	assert.Contains(t, fx.logs.actions, "leave.submit")
}

func TestSubmitLeaveRequest_SingleDay(t *testing.T) {
	t.Parallel()
	fx := newLeaveFixture()

	resp, err := fx.service.SubmitLeaveRequest(context.Background(), leave.SubmitLeaveRequestRequest{
		EmployeeID: "emp-1",
		LeaveType:  "sick",
		StartDate:  "2024-06-10",
		EndDate:    "2024-06-10",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Days)
}

// ===== TRANSITIONS =====

func TestTransition_ApproveThenAuthorise(t *testing.T) {
	t.Parallel()
	fx := newLeaveFixture()
	ctx := context.Background()

	fx.addRequest(t, "emp-1", leave.LeaveRequestStatusAuthorised, "2024-03-04", "2024-03-08")
	request := fx.addRequest(t, "emp-1", leave.LeaveRequestStatusPending, "2024-06-10", "2024-06-12")

	approved, _, err := fx.service.transition(ctx, fx.actor(t, "mgr-1"), leave.TransitionLeaveRequestRequest{
		RequestID: request.ID,
		ActorID:   "mgr-1",
		Action:    "approve",
	})
	require.NoError(t, err)
	assert.Equal(t, leave.LeaveRequestStatusApproved, approved.Status)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, "mgr-1", *approved.ApprovedBy)
	assert.NotNil(t, approved.ApprovedAt)
	assert.Empty(t, fx.roster.created)

	authorised, warnings, err := fx.service.transition(ctx, fx.actor(t, "mgr-1"), leave.TransitionLeaveRequestRequest{
		RequestID: request.ID,
		ActorID:   "mgr-1",
		Action:    "authorise",
		Comment:   "enjoy",
	})
	require.NoError(t, err)
	assert.Equal(t, leave.LeaveRequestStatusAuthorised, authorised.Status)
	require.NotNil(t, authorised.AuthorisedBy)
	assert.Equal(t, "mgr-1", *authorised.AuthorisedBy)
	assert.Empty(t, warnings)

	// Snapshot includes this request's own 3 days: 20 - 5 - 3.
	assert.Equal(t, "12", authorised.RemainingDaysSnapshot.String())

	// One zero-hour approved entry per day, ascending.
	require.Len(t, fx.roster.created, 3)
	for i, entry := range fx.roster.created {
		assert.Equal(t, "emp-1", entry.EmployeeID)
		assert.Equal(t, "shift-on-leave", entry.ShiftID)
		assert.Equal(t, float64(0), entry.Hours)
		assert.Equal(t, roster.RosterEntryStatusApproved, entry.Status)
		assert.Equal(t, fmt.Sprintf("2024-06-1%d", i), entry.Date.Format("2006-01-02"))
	}

	require.NotNil(t, authorised.ActionComment)
	assert.Contains(t, *authorised.ActionComment, "mgr-1 approve")
	assert.Contains(t, *authorised.ActionComment, "mgr-1 authorise: enjoy")
}

func TestTransition_Reject_FromPending(t *testing.T) {
	t.Parallel()
	fx := newLeaveFixture()
	request := fx.addRequest(t, "emp-1", leave.LeaveRequestStatusPending, "2024-06-10", "2024-06-12")

	// Submit stored the prospective value: 20 - 3.
	stored := fx.requests.requests[request.ID]
	stored.RemainingDaysSnapshot = decimal.NewFromInt(17)
	fx.requests.requests[request.ID] = stored

	rejected, warnings, err := fx.service.transition(context.Background(), fx.actor(t, "mgr-1"), leave.TransitionLeaveRequestRequest{
		RequestID: request.ID,
		ActorID:   "mgr-1",
		Action:    "reject",
		Comment:   "short staffed",
	})

	require.NoError(t, err)
	assert.Equal(t, leave.LeaveRequestStatusRejected, rejected.Status)
	assert.Empty(t, warnings)
	assert.Empty(t, fx.roster.created)

	// Nothing deducted: the snapshot reverts to the full remaining balance.
	assert.Equal(t, "20", rejected.RemainingDaysSnapshot.String())
	require.NotNil(t, rejected.ApprovedBy)
	assert.Equal(t, "mgr-1", *rejected.ApprovedBy)
	assert.NotNil(t, rejected.ApprovedAt)
	assert.Nil(t, rejected.AuthorisedBy)

	// A rejection never touches the balance.
	sum, err := fx.requests.SumAuthorisedDays(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.True(t, sum.IsZero())
}

func TestTransition_Reject_FromApproved(t *testing.T) {
	t.Parallel()
	fx := newLeaveFixture()

	// 5 days already authorised, so the current remaining is 15.
	fx.addRequest(t, "emp-1", leave.LeaveRequestStatusAuthorised, "2024-03-04", "2024-03-08")
	request := fx.addRequest(t, "emp-1", leave.LeaveRequestStatusApproved, "2024-06-10", "2024-06-12")

	rejected, _, err := fx.service.transition(context.Background(), fx.actor(t, "mgr-1"), leave.TransitionLeaveRequestRequest{
		RequestID: request.ID,
		ActorID:   "mgr-1",
		Action:    "reject",
	})

	require.NoError(t, err)
	assert.Equal(t, leave.LeaveRequestStatusRejected, rejected.Status)
	assert.Equal(t, "15", rejected.RemainingDaysSnapshot.String())
	require.NotNil(t, rejected.AuthorisedBy)
	assert.Equal(t, "mgr-1", *rejected.AuthorisedBy)
	assert.NotNil(t, rejected.AuthorisedAt)
}

func TestTransition_AuthoriseSkipsExistingDays(t *testing.T) {
	t.Parallel()
	fx := newLeaveFixture()
	ctx := context.Background()
	request := fx.addRequest(t, "emp-1", leave.LeaveRequestStatusApproved, "2024-06-10", "2024-06-12")

	// Two of the three days already have roster entries.
	day1, _ := time.Parse("2006-01-02", "2024-06-10")
	day3, _ := time.Parse("2006-01-02", "2024-06-12")
	fx.roster.existing[rosterKey("emp-1", day1)] = true
	fx.roster.existing[rosterKey("emp-1", day3)] = true

	authorised, warnings, err := fx.service.transition(ctx, fx.actor(t, "mgr-1"), leave.TransitionLeaveRequestRequest{
		RequestID: request.ID,
		ActorID:   "mgr-1",
		Action:    "authorise",
	})

	require.NoError(t, err)
	assert.Equal(t, leave.LeaveRequestStatusAuthorised, authorised.Status)
	require.Len(t, fx.roster.created, 1)
	assert.Equal(t, "2024-06-11", fx.roster.created[0].Date.Format("2006-01-02"))
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "2024-06-10")
	assert.Contains(t, warnings[1], "2024-06-12")
}

func TestTransition_AuthoriseFromPending(t *testing.T) {
	t.Parallel()
	fx := newLeaveFixture()
	request := fx.addRequest(t, "emp-1", leave.LeaveRequestStatusPending, "2024-06-10", "2024-06-12")

	_, _, err := fx.service.transition(context.Background(), fx.actor(t, "mgr-1"), leave.TransitionLeaveRequestRequest{
		RequestID: request.ID,
		ActorID:   "mgr-1",
		Action:    "authorise",
	})

	assert.ErrorIs(t, err, leave.ErrInvalidState)
	assert.Empty(t, fx.roster.created)
}

func TestTransition_TerminalStatusIsFinal(t *testing.T) {
	t.Parallel()
	fx := newLeaveFixture()

	for _, status := range []leave.LeaveRequestStatus{leave.LeaveRequestStatusAuthorised, leave.LeaveRequestStatusRejected} {
		request := fx.addRequest(t, "emp-1", status, "2024-06-10", "2024-06-12")
		for _, action := range []string{"approve", "reject", "authorise"} {
			_, _, err := fx.service.transition(context.Background(), fx.actor(t, "mgr-1"), leave.TransitionLeaveRequestRequest{
				RequestID: request.ID,
				ActorID:   "mgr-1",
				Action:    action,
			})
			assert.ErrorIs(t, err, leave.ErrInvalidState, "status %s action %s", status, action)
		}
	}
}

func TestTransition_UnknownAction(t *testing.T) {
	t.Parallel()
	fx := newLeaveFixture()
	request := fx.addRequest(t, "emp-1", leave.LeaveRequestStatusPending, "2024-06-10", "2024-06-12")

	_, _, err := fx.service.transition(context.Background(), fx.actor(t, "mgr-1"), leave.TransitionLeaveRequestRequest{
		RequestID: request.ID,
		ActorID:   "mgr-1",
		Action:    "escalate",
	})

	assert.ErrorIs(t, err, leave.ErrInvalidAction)
}

func TestTransition_PermissionDenied(t *testing.T) {
	t.Parallel()
	fx := newLeaveFixture()
	request := fx.addRequest(t, "emp-1", leave.LeaveRequestStatusPending, "2024-06-10", "2024-06-12")

	_, _, err := fx.service.transition(context.Background(), fx.actor(t, "emp-2"), leave.TransitionLeaveRequestRequest{
		RequestID: request.ID,
		ActorID:   "emp-2",
		Action:    "approve",
	})

	assert.ErrorIs(t, err, leave.ErrPermissionDenied)
}

func TestTransition_NotFound(t *testing.T) {
	t.Parallel()
	fx := newLeaveFixture()

	_, _, err := fx.service.transition(context.Background(), fx.actor(t, "mgr-1"), leave.TransitionLeaveRequestRequest{
		RequestID: "lr-missing",
		ActorID:   "mgr-1",
		Action:    "approve",
	})

	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestTransition_ConcurrentModification(t *testing.T) {
	t.Parallel()
	fx := newLeaveFixture()
	request := fx.addRequest(t, "emp-1", leave.LeaveRequestStatusPending, "2024-06-10", "2024-06-12")

	// The conditional update loses, but the row still exists.
	fx.requests.failGuard = true

	_, _, err := fx.service.transition(context.Background(), fx.actor(t, "mgr-1"), leave.TransitionLeaveRequestRequest{
		RequestID: request.ID,
		ActorID:   "mgr-1",
		Action:    "approve",
	})

	assert.ErrorIs(t, err, leave.ErrConcurrentModification)
}

// ===== DELETE =====

func TestDeleteLeaveRequest_OwnerPending(t *testing.T) {
	t.Parallel()
	fx := newLeaveFixture()
	request := fx.addRequest(t, "emp-1", leave.LeaveRequestStatusPending, "2024-06-10", "2024-06-12")

	err := fx.service.DeleteLeaveRequest(context.Background(), request.ID, "emp-1")

	require.NoError(t, err)
	_, err = fx.requests.GetByID(context.Background(), request.ID)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestDeleteLeaveRequest_NotOwner(t *testing.T) {
	t.Parallel()
	fx := newLeaveFixture()
	request := fx.addRequest(t, "emp-1", leave.LeaveRequestStatusPending, "2024-06-10", "2024-06-12")

	err := fx.service.DeleteLeaveRequest(context.Background(), request.ID, "emp-2")

	assert.ErrorIs(t, err, leave.ErrPermissionDenied)
}

func TestDeleteLeaveRequest_NotPending(t *testing.T) {
	t.Parallel()
	fx := newLeaveFixture()
	request := fx.addRequest(t, "emp-1", leave.LeaveRequestStatusApproved, "2024-06-10", "2024-06-12")

	err := fx.service.DeleteLeaveRequest(context.Background(), request.ID, "emp-1")

	assert.ErrorIs(t, err, leave.ErrInvalidState)
}

// ===== BALANCE =====

func TestGetLeaveBalance(t *testing.T) {
	t.Parallel()
	fx := newLeaveFixture()

	fx.addRequest(t, "emp-1", leave.LeaveRequestStatusAuthorised, "2024-03-04", "2024-03-08")
	// Pending and rejected requests never count against the balance.
	fx.addRequest(t, "emp-1", leave.LeaveRequestStatusPending, "2024-07-01", "2024-07-05")
	fx.addRequest(t, "emp-1", leave.LeaveRequestStatusRejected, "2024-08-01", "2024-08-05")

	resp, err := fx.service.GetLeaveBalance(context.Background(), "emp-1")

	require.NoError(t, err)
	assert.Equal(t, "20", resp.Allocation)
	assert.Equal(t, "5", resp.AuthorisedDays)
	assert.Equal(t, "15", resp.Remaining)
}
