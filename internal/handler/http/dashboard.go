package http

import (
	"net/http"

	"github.com/cmlabs-hris/teamdesk-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/teamdesk-backend-go/internal/pkg/timezone"
)

type DashboardHandler interface {
	GetOverview(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
	clock            timezone.Clock
}

func NewDashboardHandler(dashboardService dashboard.DashboardService, clock timezone.Clock) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
		clock:            clock,
	}
}

// GetOverview implements DashboardHandler.
func (h *dashboardHandlerImpl) GetOverview(w http.ResponseWriter, r *http.Request) {
	actor, ok := requestActor(w, r, h.clock)
	if !ok {
		return
	}

	result, err := h.dashboardService.GetOverview(r.Context(), actor)
	if err != nil {
		response.HandleError(w, h.clock(), err)
		return
	}

	response.Success(w, h.clock(), result)
}
