package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-dashboard/controllers"
	"hotel-dashboard/middleware"
)

type Controllers struct {
	Guests    *controllers.GuestController
	Rooms     *controllers.RoomController
	Bookings  *controllers.BookingController
	Calendar  *controllers.CalendarController
	Dashboard *controllers.DashboardController
}

// SetupRouter wires every controller under /api.
func SetupRouter(ctl Controllers, origins []string) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		guests := api.Group("/guests")
		{
			guests.GET("", ctl.Guests.GetGuests)
			// must be registered before /:id
			guests.GET("/search", ctl.Guests.SearchGuests)
			guests.GET("/:id", ctl.Guests.GetGuestByID)
			guests.POST("", ctl.Guests.CreateGuest)
			guests.PUT("/:id", ctl.Guests.UpdateGuest)
			guests.PATCH("/:id", ctl.Guests.UpdateGuest)
			guests.DELETE("/:id", ctl.Guests.DeleteGuest)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", ctl.Rooms.GetRooms)
			rooms.GET("/available", ctl.Rooms.GetAvailableRooms)
			rooms.GET("/:id", ctl.Rooms.GetRoomByID)
			rooms.POST("", ctl.Rooms.CreateRoom)
			rooms.PATCH("/:id", ctl.Rooms.UpdateRoom)
			rooms.PUT("/:id", ctl.Rooms.UpdateRoom)
			rooms.DELETE("/:id", ctl.Rooms.DeleteRoom)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", ctl.Bookings.GetBookings)
			bookings.POST("", ctl.Bookings.CreateBooking)
			bookings.GET("/:id", ctl.Bookings.GetBookingByID)
			bookings.PUT("/:id", ctl.Bookings.UpdateBooking)
			bookings.PATCH("/:id", ctl.Bookings.UpdateBooking)
			bookings.DELETE("/:id", ctl.Bookings.DeleteBooking)
			bookings.POST("/:id/cancel", ctl.Bookings.CancelBooking)
		}

		calendar := api.Group("/calendar")
		{
			calendar.GET("", ctl.Calendar.GetBookingsForDate)
			calendar.GET("/week", ctl.Calendar.GetWeek)
		}

		api.GET("/dashboard/stats", ctl.Dashboard.GetStats)
	}

	return r
}
