package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-dashboard/models"
	"hotel-dashboard/services"
	"hotel-dashboard/utils"
)

type GuestController struct {
	GuestSvc *services.GuestService
}

// NewGuestController Constructor
func NewGuestController(svc *services.GuestService) *GuestController {
	return &GuestController{
		GuestSvc: svc,
	}
}

// name, email and phone are required by the guest form
type createGuestRequest struct {
	Name        string         `json:"name" binding:"required"`
	Email       string         `json:"email" binding:"required"`
	Phone       string         `json:"phone" binding:"required"`
	Address     models.Address `json:"address"`
	Preferences []string       `json:"preferences"`
}

// ----------------------------------------------------------------------
// GET /api/guests
// ----------------------------------------------------------------------
func (c *GuestController) GetGuests(ctx *gin.Context) {
	utils.JSONSuccess(ctx, http.StatusOK, c.GuestSvc.GetAll())
}

// ----------------------------------------------------------------------
// GET /api/guests/search?q=smith
// ----------------------------------------------------------------------
func (c *GuestController) SearchGuests(ctx *gin.Context) {
	utils.JSONSuccess(ctx, http.StatusOK, c.GuestSvc.Search(ctx.Query("q")))
}

// ----------------------------------------------------------------------
// GET /api/guests/:id
// ----------------------------------------------------------------------
func (c *GuestController) GetGuestByID(ctx *gin.Context) {
	id := ctx.Param("id")

	guest, ok := c.GuestSvc.GetByID(id)
	if !ok {
		utils.JSONError(ctx, http.StatusNotFound, services.ErrGuestNotFound.Error())
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, guest)
}

// ----------------------------------------------------------------------
// POST /api/guests
// ----------------------------------------------------------------------
func (c *GuestController) CreateGuest(ctx *gin.Context) {
	var req createGuestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONErrorDetails(ctx, http.StatusBadRequest, "Please fill in all required fields", err)
		return
	}

	guest := c.GuestSvc.Create(models.Guest{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		Preferences: req.Preferences,
	})
	utils.JSONSuccess(ctx, http.StatusCreated, guest)
}

// ----------------------------------------------------------------------
// PUT|PATCH /api/guests/:id: fields left out of the body are kept
// ----------------------------------------------------------------------
func (c *GuestController) UpdateGuest(ctx *gin.Context) {
	id := ctx.Param("id")

	var patch models.GuestPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		utils.JSONErrorDetails(ctx, http.StatusBadRequest, "Invalid request payload", err)
		return
	}

	guest, err := c.GuestSvc.Update(id, patch)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, guest)
}

// ----------------------------------------------------------------------
// DELETE /api/guests/:id
// ----------------------------------------------------------------------
func (c *GuestController) DeleteGuest(ctx *gin.Context) {
	id := ctx.Param("id")

	guest, err := c.GuestSvc.Delete(id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, guest)
}

// respondServiceError maps the services' not-found errors to 404 and
// anything else to 500.
func respondServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrGuestNotFound),
		errors.Is(err, services.ErrRoomNotFound),
		errors.Is(err, services.ErrBookingNotFound):
		utils.JSONError(ctx, http.StatusNotFound, err.Error())
	default:
		log.Printf("❌ unexpected service error: %v", err)
		utils.JSONError(ctx, http.StatusInternalServerError, err.Error())
	}
}
