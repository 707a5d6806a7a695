package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/WNVissie/BurgundyRoster/internal/domain/employee"
	"github.com/WNVissie/BurgundyRoster/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	AssignSkill(w http.ResponseWriter, r *http.Request)
	RemoveSkill(w http.ResponseWriter, r *http.Request)
	AssignLicense(w http.ResponseWriter, r *http.Request)
	RemoveLicense(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// Create implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	emp, err := h.employeeService.CreateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", emp)
}

// Get implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	emp, err := h.employeeService.GetEmployee(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, emp)
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := employee.ListEmployeesFilter{
		Search:                 query.Get("search"),
		Role:                   queryParam(query.Get("role")),
		DesignationID:          queryParam(query.Get("designation_id")),
		AreaOfResponsibilityID: queryParam(query.Get("area_id")),
		SkillID:                queryParam(query.Get("skill_id")),
		LicenseID:              queryParam(query.Get("license_id")),
	}

	employees, err := h.employeeService.ListEmployees(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}

// Update implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	emp, err := h.employeeService.UpdateEmployee(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", emp)
}

// Delete implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	actor, err := actorID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.employeeService.DeleteEmployee(r.Context(), id, actor); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted successfully", nil)
}

// AssignSkill implements EmployeeHandler.
func (h *EmployeeHandlerImpl) AssignSkill(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	var req employee.AssignSkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AssignSkill decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.employeeService.AssignSkill(r.Context(), employeeID, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Skill assigned successfully", nil)
}

// RemoveSkill implements EmployeeHandler.
func (h *EmployeeHandlerImpl) RemoveSkill(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	skillID := chi.URLParam(r, "skillID")
	if employeeID == "" || skillID == "" {
		response.BadRequest(w, "Employee ID and skill ID are required", nil)
		return
	}

	if err := h.employeeService.RemoveSkill(r.Context(), employeeID, skillID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Skill removed successfully", nil)
}

// AssignLicense implements EmployeeHandler.
func (h *EmployeeHandlerImpl) AssignLicense(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	var req employee.AssignLicenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AssignLicense decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.employeeService.AssignLicense(r.Context(), employeeID, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "License assigned successfully", nil)
}

// RemoveLicense implements EmployeeHandler.
func (h *EmployeeHandlerImpl) RemoveLicense(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	licenseID := chi.URLParam(r, "licenseID")
	if employeeID == "" || licenseID == "" {
		response.BadRequest(w, "Employee ID and license ID are required", nil)
		return
	}

	if err := h.employeeService.RemoveLicense(r.Context(), employeeID, licenseID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "License removed successfully", nil)
}

// queryParam returns a pointer for non-empty query string values.
func queryParam(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
