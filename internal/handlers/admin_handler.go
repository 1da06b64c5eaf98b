package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/levelupglow/salon-scheduler/internal/httperr"
	"github.com/levelupglow/salon-scheduler/internal/models"
)

// AdminHandler owns catalog management: services, stylist profiles
// and eligibility links. Scheduling never goes through here.
type AdminHandler struct {
	db *gorm.DB
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db}
}

// --------------------------------------------------
// Services
// --------------------------------------------------

type ServiceRequest struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"duration_minutes" binding:"required,gt=0"`
	Price           float64 `json:"price" binding:"gte=0"`
	Category        string  `json:"category"`
	Active          *bool   `json:"active"`
}

func (h *AdminHandler) ListServices(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not load services.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"services": services})
}

func (h *AdminHandler) CreateService(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	service := models.Service{
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		Category:        req.Category,
		Active:          true,
	}
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Could not create service.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"service": service})
}

// UpdateService edits the catalog entry. Existing bookings keep their
// duration snapshot, so changing duration_minutes never moves an
// appointment already on the books.
func (h *AdminHandler) UpdateService(c *gin.Context) {
	serviceID, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var service models.Service
	if err := h.db.First(&service, serviceID).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	service.Name = req.Name
	service.Description = req.Description
	service.DurationMinutes = req.DurationMinutes
	service.Price = req.Price
	service.Category = req.Category
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Could not update service.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"service": service})
}

// --------------------------------------------------
// Stylists
// --------------------------------------------------

type StylistRequest struct {
	UserID    *uint  `json:"user_id"`
	Name      string `json:"name" binding:"required"`
	Specialty string `json:"specialty"`
	Bio       string `json:"bio"`
	Active    *bool  `json:"active"`
}

func (h *AdminHandler) CreateStylist(c *gin.Context) {
	var req StylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	stylist := models.Stylist{
		UserID:    req.UserID,
		Name:      req.Name,
		Specialty: req.Specialty,
		Bio:       req.Bio,
		Active:    true,
	}
	if req.Active != nil {
		stylist.Active = *req.Active
	}

	if err := h.db.Create(&stylist).Error; err != nil {
		httperr.Internal(c, "failed_to_create_stylist", "Could not create stylist.")
		return
	}

	// Promote the linked account so stylist routes open up.
	if req.UserID != nil {
		h.db.Model(&models.User{}).
			Where("id = ?", *req.UserID).
			Update("role", models.RoleStylist)
	}

	c.JSON(http.StatusCreated, gin.H{"stylist": stylist})
}

func (h *AdminHandler) UpdateStylist(c *gin.Context) {
	stylistID, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var stylist models.Stylist
	if err := h.db.First(&stylist, stylistID).Error; err != nil {
		httperr.NotFound(c, "stylist_not_found", "Stylist not found.")
		return
	}

	var req StylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	stylist.Name = req.Name
	stylist.Specialty = req.Specialty
	stylist.Bio = req.Bio
	if req.UserID != nil {
		stylist.UserID = req.UserID
	}
	if req.Active != nil {
		stylist.Active = *req.Active
	}

	if err := h.db.Save(&stylist).Error; err != nil {
		httperr.Internal(c, "failed_to_update_stylist", "Could not update stylist.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"stylist": stylist})
}

// --------------------------------------------------
// Eligibility
// --------------------------------------------------

type AssignServiceRequest struct {
	ServiceID uint `json:"service_id" binding:"required"`
}

func (h *AdminHandler) AssignService(c *gin.Context) {
	stylistID, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var req AssignServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	var stylist models.Stylist
	if err := h.db.First(&stylist, stylistID).Error; err != nil {
		httperr.NotFound(c, "stylist_not_found", "Stylist not found.")
		return
	}

	var service models.Service
	if err := h.db.First(&service, req.ServiceID).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	rel := models.StylistService{
		StylistID: stylistID,
		ServiceID: req.ServiceID,
	}
	if err := h.db.Where(&rel).FirstOrCreate(&rel).Error; err != nil {
		httperr.Internal(c, "failed_to_assign_service", "Could not assign service.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"assignment": rel})
}
