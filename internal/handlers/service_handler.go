package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sharpcuts/barber-booking/internal/audit"
	"github.com/sharpcuts/barber-booking/internal/cache"
	"github.com/sharpcuts/barber-booking/internal/httperr"
	"github.com/sharpcuts/barber-booking/internal/httpresp"
	"github.com/sharpcuts/barber-booking/internal/images"
	"github.com/sharpcuts/barber-booking/internal/middleware"
	"github.com/sharpcuts/barber-booking/internal/models"
	"github.com/sharpcuts/barber-booking/internal/storage"
)

const maxImageBytes = 5 << 20

type ServiceHandler struct {
	db       *gorm.DB
	cache    *cache.Cache
	uploader *storage.Uploader
	audit    *audit.Dispatcher
}

func NewServiceHandler(
	db *gorm.DB,
	c *cache.Cache,
	uploader *storage.Uploader,
	auditDispatcher *audit.Dispatcher,
) *ServiceHandler {
	return &ServiceHandler{
		db:       db,
		cache:    c,
		uploader: uploader,
		audit:    auditDispatcher,
	}
}

func (h *ServiceHandler) dispatch(c *gin.Context, action string, serviceID uint) {
	barberID := c.MustGet(middleware.ContextBarberID).(uint)
	h.audit.Dispatch(audit.Event{
		BarberID: &barberID,
		Action:   action,
		Entity:   "service",
		EntityID: &serviceID,
	})
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name     string  `json:"name" binding:"required"`
	Duration int     `json:"duration" binding:"required,min=1"`
	Price    float64 `json:"price" binding:"required"`
}

type UpdateServiceRequest struct {
	Name     *string  `json:"name,omitempty"`
	Duration *int     `json:"duration,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	Active   *bool    `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	activeStr := strings.TrimSpace(c.Query("active"))
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Model(&models.Service{})

	if activeStr == "true" {
		q = q.Where("active = ?", true)
	} else if activeStr == "false" {
		q = q.Where("active = ?", false)
	}

	if query != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+query+"%")
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	service := models.Service{
		Name:     req.Name,
		Duration: req.Duration,
		Price:    req.Price,
		Active:   true,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Could not create service.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), servicesCacheKey)
	h.dispatch(c, "service_created", service.ID)
	httpresp.Created(c, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	var service models.Service
	if err := h.db.First(&service, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_not_found", "Service not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Could not load service.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Duration != nil {
		if *req.Duration <= 0 {
			httperr.BadRequest(c, "invalid_duration", "Duration must be positive.")
			return
		}
		service.Duration = *req.Duration
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Could not update service.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), servicesCacheKey)
	h.dispatch(c, "service_updated", service.ID)
	httpresp.OK(c, service)
}

// Delete removes a service from the catalog. Appointment service
// links are kept so past appointments still resolve their history.
func (h *ServiceHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	res := h.db.Delete(&models.Service{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_service", "Could not delete service.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), servicesCacheKey)
	h.dispatch(c, "service_deleted", id)
	httpresp.Message(c, "Service deleted.")
}

// --------- Seed ---------

var defaultCatalog = []models.Service{
	{Name: "Haircut", Duration: 30, Price: 250, Active: true},
	{Name: "Beard Trim", Duration: 30, Price: 150, Active: true},
	{Name: "Shave", Duration: 30, Price: 120, Active: true},
	{Name: "Hair Color", Duration: 60, Price: 500, Active: true},
	{Name: "Head Massage", Duration: 30, Price: 200, Active: true},
	{Name: "Facial", Duration: 60, Price: 450, Active: true},
}

// Seed inserts the default catalog. A non-empty catalog is left
// untouched.
func (h *ServiceHandler) Seed(c *gin.Context) {
	var count int64
	if err := h.db.Model(&models.Service{}).Count(&count).Error; err != nil {
		httperr.Internal(c, "failed_to_seed_services", "Could not seed services.")
		return
	}
	if count > 0 {
		httperr.Conflict(c, "catalog_not_empty", "Services already exist.")
		return
	}

	catalog := make([]models.Service, len(defaultCatalog))
	copy(catalog, defaultCatalog)

	if err := h.db.Create(&catalog).Error; err != nil {
		httperr.Internal(c, "failed_to_seed_services", "Could not seed services.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), servicesCacheKey)

	barberID := c.MustGet(middleware.ContextBarberID).(uint)
	h.audit.Dispatch(audit.Event{
		BarberID: &barberID,
		Action:   "services_seeded",
		Entity:   "service",
		Metadata: map[string]any{"count": len(catalog)},
	})

	httpresp.List(c, catalog)
}

// --------- Image upload ---------

func (h *ServiceHandler) UploadImage(c *gin.Context) {
	if h.uploader == nil {
		httperr.Write(c, http.StatusServiceUnavailable, "storage_not_configured", "Image storage is not configured.")
		return
	}

	id, err := parseID(c)
	if err != nil {
		return
	}

	var service models.Service
	if err := h.db.First(&service, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_not_found", "Service not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Could not load service.")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "An image file is required.")
		return
	}
	if fileHeader.Size > maxImageBytes {
		httperr.BadRequest(c, "image_too_large", "Image must be 5MB or smaller.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Could not read the uploaded image.")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Could not read the uploaded image.")
		return
	}

	encoded, err := images.ToWebP(data)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Image must be a valid JPEG or PNG.")
		return
	}

	key := fmt.Sprintf("services/%d/%s.webp", service.ID, uuid.NewString())
	url, err := h.uploader.Put(c.Request.Context(), key, encoded, "image/webp")
	if err != nil {
		httperr.Internal(c, "failed_to_store_image", "Could not store the image.")
		return
	}

	service.ImageURL = url
	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Could not update service.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), servicesCacheKey)
	h.dispatch(c, "service_image_updated", service.ID)
	httpresp.OK(c, service)
}
