// controllers/booking.go
package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"homeservice-backend/bookings"
	"homeservice-backend/utils"
)

// BookingInput defines the expected JSON structure for creating and
// updating a booking. Required-field and contact rules are enforced by
// the bookings service; the binding tags only pin the enums down.
type BookingInput struct {
	ServiceID     string `json:"serviceId"`
	CustomerName  string `json:"customerName"`
	Date          string `json:"date"`
	ContactMethod string `json:"contactMethod" binding:"omitempty,oneof=email phone"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	TimeSlot      string `json:"timeSlot" binding:"omitempty,oneof=morning afternoon evening"`
}

type BookingController struct {
	Bookings *bookings.Service
	Log      *zap.Logger
}

// GetBookings lists bookings, scoped to the requester when authenticated.
// Optional query filters: customerName (substring), serviceId (exact).
func (bc *BookingController) GetBookings(c *gin.Context) {
	filter := bookings.ListFilter{
		CustomerName: c.Query("customerName"),
	}
	if raw := c.Query("serviceId"); raw != "" {
		serviceUUID, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
			return
		}
		filter.ServiceID = &serviceUUID
	}

	result, err := bc.Bookings.List(filter, utils.RequesterID(c))
	if err != nil {
		bc.respondError(c, err, "Failed to fetch bookings")
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetBooking retrieves a single booking by ID
func (bc *BookingController) GetBooking(c *gin.Context) {
	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	booking, err := bc.Bookings.Get(bookingUUID, utils.RequesterID(c))
	if err != nil {
		bc.respondError(c, err, "Failed to fetch booking")
		return
	}

	c.JSON(http.StatusOK, booking)
}

// CreateBooking creates a new booking, owned by the requester when
// authenticated and anonymous otherwise
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var input BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	in, ok := bc.createInput(c, input)
	if !ok {
		return
	}

	booking, err := bc.Bookings.Create(in, utils.RequesterID(c))
	if err != nil {
		bc.respondError(c, err, "Failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// UpdateBooking overwrites the mutable fields of an existing booking
func (bc *BookingController) UpdateBooking(c *gin.Context) {
	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var input BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	in, ok := bc.createInput(c, input)
	if !ok {
		return
	}

	booking, err := bc.Bookings.Update(bookingUUID, bookings.UpdateInput(in), utils.RequesterID(c))
	if err != nil {
		bc.respondError(c, err, "Failed to update booking")
		return
	}

	c.JSON(http.StatusOK, booking)
}

// DeleteBooking removes a booking
func (bc *BookingController) DeleteBooking(c *gin.Context) {
	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	id, err := bc.Bookings.Delete(bookingUUID, utils.RequesterID(c))
	if err != nil {
		bc.respondError(c, err, "Failed to delete booking")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully", "id": id})
}

// createInput converts the wire shape to a service input. Empty strings
// stay zero values so the service reports them as missing fields.
func (bc *BookingController) createInput(c *gin.Context, input BookingInput) (bookings.CreateInput, bool) {
	in := bookings.CreateInput{
		CustomerName:  input.CustomerName,
		ContactMethod: input.ContactMethod,
		Email:         input.Email,
		Phone:         input.Phone,
		TimeSlot:      input.TimeSlot,
	}

	if input.ServiceID != "" {
		serviceUUID, err := uuid.Parse(input.ServiceID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID")
			return in, false
		}
		in.ServiceID = serviceUUID
	}

	if input.Date != "" {
		date, err := parseDate(input.Date)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format, expected RFC3339 or YYYY-MM-DD")
			return in, false
		}
		in.Date = date
	}

	return in, true
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

func (bc *BookingController) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, bookings.ErrNotFound):
		utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
	case errors.Is(err, bookings.ErrUnauthorized):
		utils.RespondWithError(c, http.StatusForbidden, "Unauthorized to access this booking")
	case errors.Is(err, bookings.ErrInvalidReference):
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID")
	case errors.Is(err, bookings.ErrInvalidContact):
		msg := strings.TrimPrefix(err.Error(), bookings.ErrInvalidContact.Error()+": ")
		utils.RespondWithError(c, http.StatusBadRequest, msg)
	case errors.Is(err, bookings.ErrMissingField):
		msg := strings.TrimPrefix(err.Error(), bookings.ErrMissingField.Error()+": ")
		utils.RespondWithError(c, http.StatusBadRequest, "Required fields: "+msg)
	default:
		bc.Log.Error(fallback, zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, fallback)
	}
}
