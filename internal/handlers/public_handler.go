package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sharpcuts/barber-booking/internal/cache"
	domain "github.com/sharpcuts/barber-booking/internal/domain/booking"
	"github.com/sharpcuts/barber-booking/internal/httperr"
	"github.com/sharpcuts/barber-booking/internal/httpresp"
	"github.com/sharpcuts/barber-booking/internal/models"
	"github.com/sharpcuts/barber-booking/internal/timezone"
	ucbooking "github.com/sharpcuts/barber-booking/internal/usecase/booking"
)

const servicesCacheKey = "public:services"

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db           *gorm.DB
	cache        *cache.Cache
	availability *ucbooking.GetAvailability
	book         *ucbooking.Book
	loc          *time.Location
}

func NewPublicHandler(
	db *gorm.DB,
	c *cache.Cache,
	availability *ucbooking.GetAvailability,
	book *ucbooking.Book,
	loc *time.Location,
) *PublicHandler {
	return &PublicHandler{
		db:           db,
		cache:        c,
		availability: availability,
		book:         book,
		loc:          loc,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateAppointmentRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	ServiceIDs    []uint `json:"service_ids" binding:"required"`
	Date          string `json:"date" binding:"required"` // YYYY-MM-DD
	Time          string `json:"time" binding:"required"` // HH:mm
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	ctx := c.Request.Context()

	var services []models.Service
	if h.cache.GetJSON(ctx, servicesCacheKey, &services) {
		httpresp.List(c, services)
		return
	}

	if err := h.db.
		Where("active = ?", true).
		Order("id ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	h.cache.SetJSON(ctx, servicesCacheKey, services)
	httpresp.List(c, services)
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	date, err := timezone.ParseDate(dateStr, h.loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	var duration time.Duration
	if durStr := c.Query("duration"); durStr != "" {
		minutes, err := strconv.Atoi(durStr)
		if err != nil || minutes <= 0 {
			httperr.BadRequest(c, "invalid_duration", "Duration must be a positive number of minutes.")
			return
		}
		duration = time.Duration(minutes) * time.Minute
	}

	barber, err := h.resolveBarber(c)
	if err != nil {
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		BarberID: barber.ID,
		Date:     date,
		Duration: duration,
	})
	if err != nil {
		httperr.Internal(c, "availability_failed", "Could not compute availability.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

////////////////////////////////////////////////////////
// CREATE APPOINTMENT
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	start, err := timezone.ParseDateTime(req.Date, req.Time, h.loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Date or time is invalid.")
		return
	}

	barber, err := h.resolveBarber(c)
	if err != nil {
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), ucbooking.BookInput{
		BarberID:      barber.ID,
		ServiceIDs:    req.ServiceIDs,
		StartTime:     start,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// resolveBarber finds the shop's barber. The shop runs a single
// chair, so the first registered barber is the one being booked.
// Writes the error response itself on failure.
func (h *PublicHandler) resolveBarber(c *gin.Context) (*models.Barber, error) {
	var barber models.Barber
	if err := h.db.Order("id ASC").First(&barber).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "No barber is registered yet.")
		return nil, err
	}
	return &barber, nil
}
