package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-dashboard/services"
	"hotel-dashboard/utils"
)

const maxCalendarDays = 31

type CalendarController struct {
	BookingSvc *services.BookingService
	Now        func() time.Time
}

func NewCalendarController(svc *services.BookingService) *CalendarController {
	return &CalendarController{BookingSvc: svc, Now: time.Now}
}

// today is taken in UTC, the zone ParseDate reads query dates in.
func (ctrl *CalendarController) today() time.Time {
	return ctrl.Now().UTC()
}

// dateQuery reads an optional YYYY-MM-DD query parameter, defaulting to today.
func (ctrl *CalendarController) dateQuery(c *gin.Context, key string) (time.Time, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return services.StartOfDay(ctrl.today()), nil
	}
	return utils.ParseDate(raw)
}

// GetBookingsForDate (GET /api/calendar?date=2024-01-10)
func (ctrl *CalendarController) GetBookingsForDate(c *gin.Context) {
	date, err := ctrl.dateQuery(c, "date")
	if err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "Invalid date", err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"date":     date.Format(utils.DateLayout),
		"bookings": services.ActiveOn(date, ctrl.BookingSvc.GetAll()),
	})
}

// GetWeek (GET /api/calendar/week?from=2024-01-10&days=7)
func (ctrl *CalendarController) GetWeek(c *gin.Context) {
	from, err := ctrl.dateQuery(c, "from")
	if err != nil {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "Invalid date", err)
		return
	}

	days := services.DefaultCalendarDays
	if raw := strings.TrimSpace(c.Query("days")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxCalendarDays {
			utils.JSONError(c, http.StatusBadRequest, "days must be between 1 and 31")
			return
		}
		days = n
	}

	utils.JSONSuccess(c, http.StatusOK, services.Week(from, ctrl.today(), days, ctrl.BookingSvc.GetAll()))
}
