package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sharpcuts/barber-booking/internal/httperr"
	"github.com/sharpcuts/barber-booking/internal/httpresp"
	"github.com/sharpcuts/barber-booking/internal/middleware"
	"github.com/sharpcuts/barber-booking/internal/timezone"
	ucbooking "github.com/sharpcuts/barber-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	list         *ucbooking.ListAppointments
	updateStatus *ucbooking.UpdateStatus
	markInformed *ucbooking.MarkInformed
	loc          *time.Location
}

func NewAppointmentHandler(
	list *ucbooking.ListAppointments,
	updateStatus *ucbooking.UpdateStatus,
	markInformed *ucbooking.MarkInformed,
	loc *time.Location,
) *AppointmentHandler {
	return &AppointmentHandler{
		list:         list,
		updateStatus: updateStatus,
		markInformed: markInformed,
		loc:          loc,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(uint)

	var date *time.Time
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := timezone.ParseDate(dateStr, h.loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
			return
		}
		date = &parsed
	}

	views, err := h.list.Execute(c.Request.Context(), barberID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	httpresp.List(c, views)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(uint)

	id, err := parseID(c)
	if err != nil {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.updateStatus.Execute(c.Request.Context(), barberID, id, req.Status)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// INFORMED
// ======================================================

func (h *AppointmentHandler) MarkInformed(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(uint)

	id, err := parseID(c)
	if err != nil {
		return
	}

	ap, err := h.markInformed.Execute(c.Request.Context(), barberID, id)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// parseID reads the :id path param. Writes the error response itself
// on failure.
func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid id.")
		return 0, err
	}
	return uint(id), nil
}
