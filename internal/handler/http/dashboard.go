package http

import (
	"net/http"

	"github.com/campushq/attendance-insights/internal/domain/dashboard"
	"github.com/campushq/attendance-insights/internal/handler/http/response"
)

type DashboardHandler interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
	GetDepartmentRollup(w http.ResponseWriter, r *http.Request)
	GetStatusRollup(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// GetDashboard implements DashboardHandler.
func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetDashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetDepartmentRollup implements DashboardHandler.
func (h *dashboardHandlerImpl) GetDepartmentRollup(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetDepartmentRollup(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetStatusRollup implements DashboardHandler.
func (h *dashboardHandlerImpl) GetStatusRollup(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetStatusRollup(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
