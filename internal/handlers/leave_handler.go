package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sharpcuts/barber-booking/internal/httperr"
	"github.com/sharpcuts/barber-booking/internal/httpresp"
	"github.com/sharpcuts/barber-booking/internal/middleware"
	ucleave "github.com/sharpcuts/barber-booking/internal/usecase/leave"
)

type LeaveHandler struct {
	add    *ucleave.Add
	list   *ucleave.List
	remove *ucleave.Remove
}

func NewLeaveHandler(add *ucleave.Add, list *ucleave.List, remove *ucleave.Remove) *LeaveHandler {
	return &LeaveHandler{
		add:    add,
		list:   list,
		remove: remove,
	}
}

// --------- Requests ---------

type AddLeaveRequest struct {
	Date      string `json:"date" binding:"required"`
	Type      string `json:"type"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// --------- Handlers ---------

func (h *LeaveHandler) Add(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(uint)

	var req AddLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	l, err := h.add.Execute(c.Request.Context(), ucleave.AddInput{
		BarberID:  barberID,
		Date:      req.Date,
		Type:      req.Type,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.Created(c, l)
}

func (h *LeaveHandler) List(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(uint)

	leaves, err := h.list.Execute(c.Request.Context(), barberID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_leaves", "Could not list leaves.")
		return
	}

	httpresp.List(c, leaves)
}

func (h *LeaveHandler) Remove(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(uint)

	id, err := parseID(c)
	if err != nil {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), barberID, id); err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.Message(c, "Leave removed.")
}
