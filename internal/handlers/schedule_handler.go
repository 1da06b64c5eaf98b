package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/levelupglow/salon-scheduler/internal/httperr"
	ucAvailability "github.com/levelupglow/salon-scheduler/internal/usecase/availability"
)

type ScheduleHandler struct {
	getUC  *ucAvailability.GetWeeklyHours
	saveUC *ucAvailability.SaveWeeklyHours
}

func NewScheduleHandler(
	getUC *ucAvailability.GetWeeklyHours,
	saveUC *ucAvailability.SaveWeeklyHours,
) *ScheduleHandler {
	return &ScheduleHandler{getUC: getUC, saveUC: saveUC}
}

type WeeklyDayConfig struct {
	DayOfWeek   int    `json:"day_of_week" binding:"min=0,max=6"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	IsAvailable bool   `json:"is_available"`
}

type WeeklyScheduleUpdateRequest struct {
	Days []WeeklyDayConfig `json:"days" binding:"required"`
}

// Get returns the authenticated stylist's weekly hours, seeding the
// default schedule on first access.
func (h *ScheduleHandler) Get(c *gin.Context) {
	actor := actorFromContext(c)
	if actor.StylistID == 0 {
		httperr.Forbidden(c, "no_stylist_profile", "No stylist profile for this account.")
		return
	}

	rows, err := h.getUC.Execute(c.Request.Context(), actor.StylistID)
	if err != nil {
		writeError(c, err)
		return
	}

	jsonOK(c, gin.H{"days": rows})
}

// Update saves each day independently and reports per-day failures,
// so one bad row doesn't lose the rest of the edit.
func (h *ScheduleHandler) Update(c *gin.Context) {
	actor := actorFromContext(c)
	if actor.StylistID == 0 {
		httperr.Forbidden(c, "no_stylist_profile", "No stylist profile for this account.")
		return
	}

	var req WeeklyScheduleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	days := make([]ucAvailability.DayInput, 0, len(req.Days))
	for _, d := range req.Days {
		days = append(days, ucAvailability.DayInput{
			DayOfWeek:   d.DayOfWeek,
			StartTime:   d.StartTime,
			EndTime:     d.EndTime,
			IsAvailable: d.IsAvailable,
		})
	}

	result, err := h.saveUC.Execute(c.Request.Context(), actor, actor.StylistID, days)
	if err != nil {
		writeError(c, err)
		return
	}

	if len(result.Failed) > 0 && len(result.Saved) == 0 {
		c.JSON(http.StatusBadRequest, result)
		return
	}

	jsonOK(c, result)
}
