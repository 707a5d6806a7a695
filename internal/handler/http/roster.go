package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/WNVissie/BurgundyRoster/internal/domain/roster"
	"github.com/WNVissie/BurgundyRoster/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type RosterHandler interface {
	CreateShift(w http.ResponseWriter, r *http.Request)
	GetShift(w http.ResponseWriter, r *http.Request)
	ListShifts(w http.ResponseWriter, r *http.Request)
	UpdateShift(w http.ResponseWriter, r *http.Request)
	DeleteShift(w http.ResponseWriter, r *http.Request)

	CreateEntry(w http.ResponseWriter, r *http.Request)
	GetEntry(w http.ResponseWriter, r *http.Request)
	ListEntries(w http.ResponseWriter, r *http.Request)
	ApproveEntry(w http.ResponseWriter, r *http.Request)
	RejectEntry(w http.ResponseWriter, r *http.Request)
	AcceptEntry(w http.ResponseWriter, r *http.Request)
	DeleteEntry(w http.ResponseWriter, r *http.Request)
}

type RosterHandlerImpl struct {
	rosterService roster.RosterService
}

func NewRosterHandler(rosterService roster.RosterService) RosterHandler {
	return &RosterHandlerImpl{rosterService: rosterService}
}

// CreateShift implements RosterHandler.
func (h *RosterHandlerImpl) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req roster.CreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateShift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	shift, err := h.rosterService.CreateShift(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift created successfully", shift)
}

// GetShift implements RosterHandler.
func (h *RosterHandlerImpl) GetShift(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Shift ID is required", nil)
		return
	}

	shift, err := h.rosterService.GetShift(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, shift)
}

// ListShifts implements RosterHandler.
func (h *RosterHandlerImpl) ListShifts(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.rosterService.ListShifts(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, shifts)
}

// UpdateShift implements RosterHandler.
func (h *RosterHandlerImpl) UpdateShift(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Shift ID is required", nil)
		return
	}

	var req roster.UpdateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateShift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.rosterService.UpdateShift(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift updated successfully", nil)
}

// DeleteShift implements RosterHandler.
func (h *RosterHandlerImpl) DeleteShift(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Shift ID is required", nil)
		return
	}

	if err := h.rosterService.DeleteShift(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift deleted successfully", nil)
}

// CreateEntry implements RosterHandler.
func (h *RosterHandlerImpl) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req roster.CreateRosterEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateRosterEntry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	entry, err := h.rosterService.CreateRosterEntry(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Roster entry created successfully", entry)
}

// GetEntry implements RosterHandler.
func (h *RosterHandlerImpl) GetEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Roster entry ID is required", nil)
		return
	}

	entry, err := h.rosterService.GetRosterEntry(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entry)
}

// ListEntries implements RosterHandler.
func (h *RosterHandlerImpl) ListEntries(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	startDate, err := dateParam(query.Get("start_date"))
	if err != nil {
		response.BadRequest(w, "Invalid start_date, expected YYYY-MM-DD", nil)
		return
	}
	endDate, err := dateParam(query.Get("end_date"))
	if err != nil {
		response.BadRequest(w, "Invalid end_date, expected YYYY-MM-DD", nil)
		return
	}

	filter := roster.ListRosterEntriesFilter{
		EmployeeID: queryParam(query.Get("employee_id")),
		StartDate:  startDate,
		EndDate:    endDate,
		Status:     queryParam(query.Get("status")),
		AreaID:     queryParam(query.Get("area_id")),
	}

	entries, err := h.rosterService.ListRosterEntries(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// ApproveEntry implements RosterHandler.
func (h *RosterHandlerImpl) ApproveEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Roster entry ID is required", nil)
		return
	}

	if err := h.rosterService.ApproveRosterEntry(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Roster entry approved successfully", nil)
}

// RejectEntry implements RosterHandler.
func (h *RosterHandlerImpl) RejectEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Roster entry ID is required", nil)
		return
	}

	if err := h.rosterService.RejectRosterEntry(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Roster entry rejected successfully", nil)
}

// AcceptEntry implements RosterHandler.
func (h *RosterHandlerImpl) AcceptEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Roster entry ID is required", nil)
		return
	}

	employeeID, err := actorID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.rosterService.AcceptRosterEntry(r.Context(), id, employeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Roster entry accepted successfully", nil)
}

// DeleteEntry implements RosterHandler.
func (h *RosterHandlerImpl) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Roster entry ID is required", nil)
		return
	}

	if err := h.rosterService.DeleteRosterEntry(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Roster entry deleted successfully", nil)
}
