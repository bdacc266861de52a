package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-dashboard/models"
	"hotel-dashboard/services"
	"hotel-dashboard/utils"
)

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

type createRoomRequest struct {
	RoomNumber string  `json:"roomNumber" binding:"required"`
	Type       string  `json:"type"`
	Price      float64 `json:"price" binding:"gte=0"`
	Status     string  `json:"status"`
}

// ----------------------------------------------------
// 1. Get Rooms (GET /api/rooms)
// ----------------------------------------------------

func (ctrl *RoomController) GetRooms(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, ctrl.RoomSvc.GetAll())
}

// GetAvailableRooms (GET /api/rooms/available)
func (ctrl *RoomController) GetAvailableRooms(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, ctrl.RoomSvc.Available())
}

func (ctrl *RoomController) GetRoomByID(c *gin.Context) {
	id := c.Param("id")

	room, ok := ctrl.RoomSvc.GetByID(id)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Room with ID %s not found.", id))
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// ----------------------------------------------------
// 2. Create Room (POST /api/rooms)
// ----------------------------------------------------

func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONErrorDetails(c, http.StatusBadRequest, "Invalid request payload", err)
		return
	}

	req.RoomNumber = strings.TrimSpace(req.RoomNumber)
	if req.RoomNumber == "" {
		utils.JSONError(c, http.StatusBadRequest, "Room Number is required.")
		return
	}
	if req.Status != "" && !models.IsValidRoomStatus(req.Status) {
		utils.JSONError(c, http.StatusBadRequest, fmt.Sprintf("Invalid room status '%s'.", req.Status))
		return
	}

	room := ctrl.RoomSvc.Create(models.Room{
		RoomNumber: req.RoomNumber,
		Type:       req.Type,
		Price:      req.Price,
		Status:     req.Status,
	})
	utils.JSONSuccess(c, http.StatusCreated, room)
}

// ----------------------------------------------------
// 3. Update Room (PUT|PATCH /api/rooms/:id)
// ----------------------------------------------------

func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	id := c.Param("id")

	var patch models.RoomPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "Invalid request payload", err)
		return
	}
	if patch.Status != nil && !models.IsValidRoomStatus(*patch.Status) {
		utils.JSONError(c, http.StatusBadRequest, fmt.Sprintf("Invalid room status '%s'.", *patch.Status))
		return
	}

	room, err := ctrl.RoomSvc.Update(id, patch)
	if err != nil {
		log.Printf("❌ Update Error for Room %s: %v", id, err)
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// ----------------------------------------------------
// 4. Delete Room (DELETE /api/rooms/:id)
// ----------------------------------------------------

func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	id := c.Param("id")

	room, err := ctrl.RoomSvc.Delete(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}
