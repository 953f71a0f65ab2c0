package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sharpcuts/barber-booking/internal/httperr"
	"github.com/sharpcuts/barber-booking/internal/httpresp"
	"github.com/sharpcuts/barber-booking/internal/middleware"
	ucbooking "github.com/sharpcuts/barber-booking/internal/usecase/booking"
)

type DashboardHandler struct {
	dashboard *ucbooking.Dashboard
}

func NewDashboardHandler(dashboard *ucbooking.Dashboard) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

func (h *DashboardHandler) Get(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(uint)

	view, err := h.dashboard.Execute(c.Request.Context(), barberID)
	if err != nil {
		httperr.Internal(c, "failed_to_load_dashboard", "Could not load the dashboard.")
		return
	}

	httpresp.OK(c, view)
}
