package services

import (
	"math"

	"hotel-dashboard/models"
)

type DashboardStats struct {
	TotalBookings  int     `json:"totalBookings"`
	TotalRevenue   float64 `json:"totalRevenue"`
	OccupancyRate  int     `json:"occupancyRate"`
	AvailableRooms int     `json:"availableRooms"`
}

// StatsService summarises the other services for the dashboard header.
type StatsService struct {
	Bookings *BookingService
	Rooms    *RoomService
}

func NewStatsService(bookings *BookingService, rooms *RoomService) *StatsService {
	return &StatsService{Bookings: bookings, Rooms: rooms}
}

// Dashboard counts every booking regardless of status. Occupancy is the
// share of rooms not currently available, rounded to a whole percent.
func (s *StatsService) Dashboard() DashboardStats {
	bookings := s.Bookings.GetAll()
	rooms := s.Rooms.GetAll()

	var stats DashboardStats
	stats.TotalBookings = len(bookings)
	for _, b := range bookings {
		stats.TotalRevenue += b.TotalAmount
	}
	for _, r := range rooms {
		if r.Status == models.RoomStatusAvailable {
			stats.AvailableRooms++
		}
	}
	if len(rooms) > 0 {
		occupied := float64(len(rooms)-stats.AvailableRooms) / float64(len(rooms)) * 100
		stats.OccupancyRate = int(math.Round(occupied))
	}
	return stats
}
