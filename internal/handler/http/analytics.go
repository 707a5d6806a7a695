package http

import (
	"net/http"

	"github.com/WNVissie/BurgundyRoster/internal/domain/analytics"
	"github.com/WNVissie/BurgundyRoster/internal/handler/http/response"
)

type AnalyticsHandler interface {
	Dashboard(w http.ResponseWriter, r *http.Request)
	SkillDistribution(w http.ResponseWriter, r *http.Request)
	LeaveTypeDistribution(w http.ResponseWriter, r *http.Request)
}

type AnalyticsHandlerImpl struct {
	analyticsService analytics.AnalyticsService
}

func NewAnalyticsHandler(analyticsService analytics.AnalyticsService) AnalyticsHandler {
	return &AnalyticsHandlerImpl{analyticsService: analyticsService}
}

// Dashboard implements AnalyticsHandler.
func (h *AnalyticsHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dashboard, err := h.analyticsService.GetDashboard(r.Context(), query.Get("start_date"), query.Get("end_date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, dashboard)
}

// SkillDistribution implements AnalyticsHandler.
func (h *AnalyticsHandlerImpl) SkillDistribution(w http.ResponseWriter, r *http.Request) {
	distribution, err := h.analyticsService.GetSkillDistribution(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, distribution)
}

// LeaveTypeDistribution implements AnalyticsHandler.
func (h *AnalyticsHandlerImpl) LeaveTypeDistribution(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	distribution, err := h.analyticsService.GetLeaveTypeDistribution(r.Context(), query.Get("start_date"), query.Get("end_date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, distribution)
}
