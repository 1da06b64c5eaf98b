package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/levelupglow/salon-scheduler/internal/domain/booking"
	"github.com/levelupglow/salon-scheduler/internal/httperr"
	"github.com/levelupglow/salon-scheduler/internal/middleware"
)

func actorFromContext(c *gin.Context) domain.Actor {
	userID, _ := c.Get(middleware.ContextUserID)
	role, _ := c.Get(middleware.ContextUserRole)
	stylistID, _ := c.Get(middleware.ContextStylistID)

	actor := domain.Actor{}
	if id, ok := userID.(uint); ok {
		actor.UserID = id
	}
	if r, ok := role.(string); ok {
		actor.Role = r
	}
	if id, ok := stylistID.(uint); ok {
		actor.StylistID = id
	}

	return actor
}

// writeError maps usecase errors onto HTTP statuses. Business codes
// are recoverable by the caller; anything else is a 500.
func writeError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Something went wrong. Please try again.")
		return
	}

	switch code {
	case "time_conflict":
		httperr.Conflict(c, code, "This time is no longer available, please choose another.")
	case "slot_unavailable":
		httperr.Conflict(c, code, "Not enough consecutive time available for this service.")
	case "booking_not_found":
		httperr.NotFound(c, code, "This appointment could not be found.")
	case "stylist_not_found":
		httperr.NotFound(c, code, "Stylist not found.")
	case "service_not_found":
		httperr.NotFound(c, code, "Service not found.")
	case "not_allowed":
		httperr.Forbidden(c, code, "You are not allowed to perform this action.")
	default:
		httperr.BadRequest(c, code, "Invalid request.")
	}
}

func jsonOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
