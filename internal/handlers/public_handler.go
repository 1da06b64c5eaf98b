package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/levelupglow/salon-scheduler/internal/domain/booking"
	"github.com/levelupglow/salon-scheduler/internal/httperr"
	"github.com/levelupglow/salon-scheduler/internal/models"
	ucAvailability "github.com/levelupglow/salon-scheduler/internal/usecase/availability"
)

type PublicHandler struct {
	db       *gorm.DB
	repo     domain.Repository
	calendar *ucAvailability.Calendar
	resolver *ucAvailability.ResolveSlots
}

func NewPublicHandler(
	db *gorm.DB,
	repo domain.Repository,
	calendar *ucAvailability.Calendar,
	resolver *ucAvailability.ResolveSlots,
) *PublicHandler {
	return &PublicHandler{
		db:       db,
		repo:     repo,
		calendar: calendar,
		resolver: resolver,
	}
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (h *PublicHandler) ListServices(c *gin.Context) {
	category := strings.TrimSpace(strings.ToLower(c.Query("category")))
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.Where("active = true")

	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not load services.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"services": services})
}

// --------------------------------------------------
// Stylists
// --------------------------------------------------

// ListStylists returns active stylists, narrowed to those eligible
// for ?service_id when given. Eligibility failure fails closed: no
// stylists are offered rather than everyone.
func (h *PublicHandler) ListStylists(c *gin.Context) {
	serviceIDStr := c.Query("service_id")

	if serviceIDStr != "" {
		serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_service_id", "Invalid service.")
			return
		}

		stylists, err := h.repo.ListStylistsForService(c.Request.Context(), uint(serviceID))
		if err != nil {
			httperr.Internal(c, "failed_to_list_stylists", "Could not determine eligible stylists.")
			return
		}

		c.JSON(http.StatusOK, gin.H{"stylists": stylists})
		return
	}

	var stylists []models.Stylist
	if err := h.db.Where("active = true").Order("id ASC").Find(&stylists).Error; err != nil {
		httperr.Internal(c, "failed_to_list_stylists", "Could not load stylists.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"stylists": stylists})
}

// --------------------------------------------------
// Calendar
// --------------------------------------------------

func (h *PublicHandler) Calendar(c *gin.Context) {
	stylistID, ok := paramUint(c, "id")
	if !ok {
		return
	}

	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	dates, err := h.calendar.Execute(c.Request.Context(), stylistID, days)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"dates": dates})
}

// --------------------------------------------------
// Slots
// --------------------------------------------------

func (h *PublicHandler) Slots(c *gin.Context) {
	stylistID, ok := paramUint(c, "id")
	if !ok {
		return
	}

	dateStr := c.Query("date")
	serviceIDStr := c.Query("service_id")

	if dateStr == "" || serviceIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Date and service are required.")
		return
	}

	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Invalid service.")
		return
	}

	out, err := h.resolver.Execute(c.Request.Context(), ucAvailability.ResolveSlotsInput{
		StylistID:    stylistID,
		ServiceID:    uint(serviceID),
		Date:         dateStr,
		SelectedTime: c.Query("selected"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, out)
}

func paramUint(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid id.")
		return 0, false
	}
	return uint(id), true
}
