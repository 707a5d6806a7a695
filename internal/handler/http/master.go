package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/WNVissie/BurgundyRoster/internal/domain/master/area"
	"github.com/WNVissie/BurgundyRoster/internal/domain/master/designation"
	"github.com/WNVissie/BurgundyRoster/internal/domain/master/license"
	"github.com/WNVissie/BurgundyRoster/internal/domain/master/skill"
	"github.com/WNVissie/BurgundyRoster/internal/handler/http/response"
	"github.com/WNVissie/BurgundyRoster/internal/service/master"
	"github.com/go-chi/chi/v5"
)

type MasterHandler interface {
	CreateSkill(w http.ResponseWriter, r *http.Request)
	GetSkill(w http.ResponseWriter, r *http.Request)
	ListSkills(w http.ResponseWriter, r *http.Request)
	UpdateSkill(w http.ResponseWriter, r *http.Request)
	DeleteSkill(w http.ResponseWriter, r *http.Request)

	CreateArea(w http.ResponseWriter, r *http.Request)
	GetArea(w http.ResponseWriter, r *http.Request)
	ListAreas(w http.ResponseWriter, r *http.Request)
	UpdateArea(w http.ResponseWriter, r *http.Request)
	DeleteArea(w http.ResponseWriter, r *http.Request)

	CreateDesignation(w http.ResponseWriter, r *http.Request)
	GetDesignation(w http.ResponseWriter, r *http.Request)
	ListDesignations(w http.ResponseWriter, r *http.Request)
	UpdateDesignation(w http.ResponseWriter, r *http.Request)
	DeleteDesignation(w http.ResponseWriter, r *http.Request)

	CreateLicense(w http.ResponseWriter, r *http.Request)
	GetLicense(w http.ResponseWriter, r *http.Request)
	ListLicenses(w http.ResponseWriter, r *http.Request)
	UpdateLicense(w http.ResponseWriter, r *http.Request)
	DeleteLicense(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &MasterHandlerImpl{masterService: masterService}
}

// ==================== SKILL HANDLERS ====================

// CreateSkill implements MasterHandler.
func (h *MasterHandlerImpl) CreateSkill(w http.ResponseWriter, r *http.Request) {
	var req skill.CreateSkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateSkill decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.masterService.CreateSkill(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Skill created successfully", created)
}

// GetSkill implements MasterHandler.
func (h *MasterHandlerImpl) GetSkill(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Skill ID is required", nil)
		return
	}

	found, err := h.masterService.GetSkill(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// ListSkills implements MasterHandler.
func (h *MasterHandlerImpl) ListSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := h.masterService.ListSkills(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, skills)
}

// UpdateSkill implements MasterHandler.
func (h *MasterHandlerImpl) UpdateSkill(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Skill ID is required", nil)
		return
	}

	var req skill.UpdateSkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateSkill decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := h.masterService.UpdateSkill(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Skill updated successfully", nil)
}

// DeleteSkill implements MasterHandler.
func (h *MasterHandlerImpl) DeleteSkill(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Skill ID is required", nil)
		return
	}

	if err := h.masterService.DeleteSkill(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Skill deleted successfully", nil)
}

// ==================== AREA HANDLERS ====================

// CreateArea implements MasterHandler.
func (h *MasterHandlerImpl) CreateArea(w http.ResponseWriter, r *http.Request) {
	var req area.CreateAreaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateArea decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.masterService.CreateArea(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Area of responsibility created successfully", created)
}

// GetArea implements MasterHandler.
func (h *MasterHandlerImpl) GetArea(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Area ID is required", nil)
		return
	}

	found, err := h.masterService.GetArea(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// ListAreas implements MasterHandler.
func (h *MasterHandlerImpl) ListAreas(w http.ResponseWriter, r *http.Request) {
	areas, err := h.masterService.ListAreas(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, areas)
}

// UpdateArea implements MasterHandler.
func (h *MasterHandlerImpl) UpdateArea(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Area ID is required", nil)
		return
	}

	var req area.UpdateAreaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateArea decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := h.masterService.UpdateArea(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Area of responsibility updated successfully", nil)
}

// DeleteArea implements MasterHandler.
func (h *MasterHandlerImpl) DeleteArea(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Area ID is required", nil)
		return
	}

	if err := h.masterService.DeleteArea(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Area of responsibility deleted successfully", nil)
}

// ==================== DESIGNATION HANDLERS ====================

// CreateDesignation implements MasterHandler.
func (h *MasterHandlerImpl) CreateDesignation(w http.ResponseWriter, r *http.Request) {
	var req designation.CreateDesignationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateDesignation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.masterService.CreateDesignation(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Designation created successfully", created)
}

// GetDesignation implements MasterHandler.
func (h *MasterHandlerImpl) GetDesignation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Designation ID is required", nil)
		return
	}

	found, err := h.masterService.GetDesignation(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// ListDesignations implements MasterHandler.
func (h *MasterHandlerImpl) ListDesignations(w http.ResponseWriter, r *http.Request) {
	designations, err := h.masterService.ListDesignations(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, designations)
}

// UpdateDesignation implements MasterHandler.
func (h *MasterHandlerImpl) UpdateDesignation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Designation ID is required", nil)
		return
	}

	var req designation.UpdateDesignationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateDesignation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := h.masterService.UpdateDesignation(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Designation updated successfully", nil)
}

// DeleteDesignation implements MasterHandler.
func (h *MasterHandlerImpl) DeleteDesignation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Designation ID is required", nil)
		return
	}

	if err := h.masterService.DeleteDesignation(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Designation deleted successfully", nil)
}

// ==================== LICENSE HANDLERS ====================

// CreateLicense implements MasterHandler.
func (h *MasterHandlerImpl) CreateLicense(w http.ResponseWriter, r *http.Request) {
	var req license.CreateLicenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateLicense decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.masterService.CreateLicense(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "License type created successfully", created)
}

// GetLicense implements MasterHandler.
func (h *MasterHandlerImpl) GetLicense(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "License ID is required", nil)
		return
	}

	found, err := h.masterService.GetLicense(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// ListLicenses implements MasterHandler.
func (h *MasterHandlerImpl) ListLicenses(w http.ResponseWriter, r *http.Request) {
	licenses, err := h.masterService.ListLicenses(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, licenses)
}

// UpdateLicense implements MasterHandler.
func (h *MasterHandlerImpl) UpdateLicense(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "License ID is required", nil)
		return
	}

	var req license.UpdateLicenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateLicense decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := h.masterService.UpdateLicense(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "License type updated successfully", nil)
}

// DeleteLicense implements MasterHandler.
func (h *MasterHandlerImpl) DeleteLicense(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "License ID is required", nil)
		return
	}

	if err := h.masterService.DeleteLicense(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "License type deleted successfully", nil)
}
