package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/levelupglow/salon-scheduler/internal/httperr"
	ucBooking "github.com/levelupglow/salon-scheduler/internal/usecase/booking"
)

type BookingHandler struct {
	createUC   *ucBooking.CreateBooking
	confirmUC  *ucBooking.ConfirmBooking
	cancelUC   *ucBooking.CancelBooking
	completeUC *ucBooking.CompleteBooking
	listUC     *ucBooking.ListBookings
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	confirmUC *ucBooking.ConfirmBooking,
	cancelUC *ucBooking.CancelBooking,
	completeUC *ucBooking.CompleteBooking,
	listUC *ucBooking.ListBookings,
) *BookingHandler {
	return &BookingHandler{
		createUC:   createUC,
		confirmUC:  confirmUC,
		cancelUC:   cancelUC,
		completeUC: completeUC,
		listUC:     listUC,
	}
}

// --------- Requests ---------

type CreateBookingRequest struct {
	StylistID  uint   `json:"stylist_id" binding:"required"`
	ServiceIDs []uint `json:"service_ids" binding:"required,min=1"`

	Date string `json:"date" binding:"required"` // YYYY-MM-DD
	Time string `json:"time" binding:"required"` // HH:MM:SS

	Name  string `json:"name" binding:"required,min=2"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"required,min=7"`
	Notes string `json:"notes"`
}

// --------- Handlers ---------

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	created, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		Actor:       actorFromContext(c),
		ClientName:  req.Name,
		ClientEmail: req.Email,
		ClientPhone: req.Phone,
		StylistID:   req.StylistID,
		ServiceIDs:  req.ServiceIDs,
		Date:        req.Date,
		Time:        req.Time,
		Notes:       req.Notes,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"bookings": created})
}

func (h *BookingHandler) MyBookings(c *gin.Context) {
	bookings, err := h.listUC.ForClient(c.Request.Context(), actorFromContext(c))
	if err != nil {
		writeError(c, err)
		return
	}

	jsonOK(c, gin.H{"bookings": bookings})
}

// Agenda lists the authenticated stylist's bookings for a date or
// range (?date= or ?from=&to=).
func (h *BookingHandler) Agenda(c *gin.Context) {
	actor := actorFromContext(c)
	if actor.StylistID == 0 {
		httperr.Forbidden(c, "no_stylist_profile", "No stylist profile for this account.")
		return
	}

	from := c.Query("from")
	to := c.Query("to")
	if date := c.Query("date"); date != "" {
		from, to = date, date
	}

	bookings, err := h.listUC.ForStylist(
		c.Request.Context(),
		actor,
		actor.StylistID,
		from,
		to,
	)
	if err != nil {
		writeError(c, err)
		return
	}

	jsonOK(c, gin.H{"bookings": bookings})
}

func (h *BookingHandler) Confirm(c *gin.Context) {
	bookingID, ok := paramUint(c, "id")
	if !ok {
		return
	}

	b, err := h.confirmUC.Execute(c.Request.Context(), actorFromContext(c), bookingID)
	if err != nil {
		writeError(c, err)
		return
	}

	jsonOK(c, gin.H{"booking": b})
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	bookingID, ok := paramUint(c, "id")
	if !ok {
		return
	}

	b, err := h.cancelUC.Execute(c.Request.Context(), actorFromContext(c), bookingID)
	if err != nil {
		writeError(c, err)
		return
	}

	jsonOK(c, gin.H{"booking": b})
}

func (h *BookingHandler) Complete(c *gin.Context) {
	bookingID, ok := paramUint(c, "id")
	if !ok {
		return
	}

	b, err := h.completeUC.Execute(c.Request.Context(), actorFromContext(c), bookingID)
	if err != nil {
		writeError(c, err)
		return
	}

	jsonOK(c, gin.H{"booking": b})
}
