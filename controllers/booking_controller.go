package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"hotel-dashboard/models"
	"hotel-dashboard/services"
	"hotel-dashboard/utils"
)

// CreateBookingRequest mirrors the booking form. Dates are YYYY-MM-DD.
// When totalAmount is left out the selected room's nightly price is used.
type CreateBookingRequest struct {
	GuestID       string   `json:"guestId" binding:"required"`
	RoomID        string   `json:"roomId" binding:"required"`
	CheckInDate   string   `json:"checkInDate" binding:"required"`
	CheckOutDate  string   `json:"checkOutDate" binding:"required"`
	TotalAmount   *float64 `json:"totalAmount"`
	PaymentStatus string   `json:"paymentStatus"`
	Status        string   `json:"status"`
}

type UpdateBookingRequest struct {
	GuestID       *string  `json:"guestId"`
	RoomID        *string  `json:"roomId"`
	CheckInDate   *string  `json:"checkInDate"`
	CheckOutDate  *string  `json:"checkOutDate"`
	TotalAmount   *float64 `json:"totalAmount"`
	PaymentStatus *string  `json:"paymentStatus"`
	Status        *string  `json:"status"`
}

type BookingController struct {
	BookingSvc *services.BookingService
	RoomSvc    *services.RoomService
}

func NewBookingController(bookings *services.BookingService, rooms *services.RoomService) *BookingController {
	return &BookingController{BookingSvc: bookings, RoomSvc: rooms}
}

func (ctrl *BookingController) GetBookings(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, ctrl.BookingSvc.GetAll())
}

func (ctrl *BookingController) GetBookingByID(c *gin.Context) {
	booking, ok := ctrl.BookingSvc.GetByID(c.Param("id"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, services.ErrBookingNotFound.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var payload CreateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("Validation error: %v", err)
		utils.JSONErrorDetails(c, http.StatusBadRequest, createBindingMessage(err), err)
		return
	}

	checkIn, err := utils.ParseDate(payload.CheckInDate)
	if err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "Invalid check-in date", err)
		return
	}
	checkOut, err := utils.ParseDate(payload.CheckOutDate)
	if err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "Invalid check-out date", err)
		return
	}
	if msg := validateStatuses(&payload.PaymentStatus, &payload.Status, true); msg != "" {
		utils.JSONError(c, http.StatusBadRequest, msg)
		return
	}

	room, ok := ctrl.RoomSvc.GetByID(payload.RoomID)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Selected room not found")
		return
	}

	amount := room.Price
	if payload.TotalAmount != nil {
		amount = *payload.TotalAmount
	}
	paymentStatus := payload.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = models.PaymentStatusPending
	}

	booking := ctrl.BookingSvc.Create(models.Booking{
		GuestID:       payload.GuestID,
		RoomID:        payload.RoomID,
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		TotalAmount:   amount,
		PaymentStatus: paymentStatus,
		Status:        payload.Status,
	})
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

func (ctrl *BookingController) UpdateBooking(c *gin.Context) {
	id := c.Param("id")

	var payload UpdateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if msg := validateStatuses(payload.PaymentStatus, payload.Status, false); msg != "" {
		utils.JSONError(c, http.StatusBadRequest, msg)
		return
	}

	patch := models.BookingPatch{
		GuestID:       payload.GuestID,
		RoomID:        payload.RoomID,
		TotalAmount:   payload.TotalAmount,
		PaymentStatus: payload.PaymentStatus,
		Status:        payload.Status,
	}
	var err error
	if patch.CheckInDate, err = parseOptionalDate(payload.CheckInDate); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "Invalid check-in date", err)
		return
	}
	if patch.CheckOutDate, err = parseOptionalDate(payload.CheckOutDate); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "Invalid check-out date", err)
		return
	}

	booking, err := ctrl.BookingSvc.Update(id, patch)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// DeleteBooking removes the booking outright.
func (ctrl *BookingController) DeleteBooking(c *gin.Context) {
	booking, err := ctrl.BookingSvc.Delete(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// CancelBooking (POST /api/bookings/:id/cancel) keeps the record with status
// "cancelled".
func (ctrl *BookingController) CancelBooking(c *gin.Context) {
	booking, err := ctrl.BookingSvc.Cancel(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

func parseOptionalDate(raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	t, err := utils.ParseDate(*raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// createBindingMessage names what the booking form is missing, based on the
// first field that failed validation.
func createBindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].StructField() {
		case "GuestID", "RoomID":
			return "Please select both guest and room"
		case "CheckInDate", "CheckOutDate":
			return "Please choose check-in and check-out dates"
		}
	}
	return "Invalid request body"
}

// validateStatuses returns a user-facing message for the first bad status,
// or "" when both are fine. An empty value means "use the default" on create
// and is rejected on update, where it would wipe the stored status.
func validateStatuses(paymentStatus, status *string, allowEmpty bool) string {
	if paymentStatus != nil {
		if *paymentStatus == "" && !allowEmpty {
			return "Payment status cannot be empty."
		}
		if *paymentStatus != "" && !models.IsValidPaymentStatus(*paymentStatus) {
			return fmt.Sprintf("Invalid payment status '%s'.", *paymentStatus)
		}
	}
	if status != nil {
		if *status == "" && !allowEmpty {
			return "Booking status cannot be empty."
		}
		if *status != "" && !models.IsValidBookingStatus(*status) {
			return fmt.Sprintf("Invalid booking status '%s'.", *status)
		}
	}
	return ""
}
