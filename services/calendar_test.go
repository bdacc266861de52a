package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-dashboard/models"
)

func TestActiveOn_HalfOpenStay(t *testing.T) {
	b := models.Booking{BookingID: "b1", CheckInDate: day("2024-01-10"), CheckOutDate: day("2024-01-12")}
	bookings := []models.Booking{b}

	assert.Len(t, ActiveOn(day("2024-01-09"), bookings), 0)
	assert.Len(t, ActiveOn(day("2024-01-10"), bookings), 1)
	assert.Len(t, ActiveOn(day("2024-01-11"), bookings), 1)
	assert.Len(t, ActiveOn(day("2024-01-12"), bookings), 0)
}

func TestActiveOn_TimeOfDayIgnored(t *testing.T) {
	b := models.Booking{
		BookingID:    "b1",
		CheckInDate:  time.Date(2024, 1, 10, 15, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2024, 1, 12, 11, 0, 0, 0, time.UTC),
	}

	morning := time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC)
	assert.Len(t, ActiveOn(morning, []models.Booking{b}), 1)

	checkoutAfternoon := time.Date(2024, 1, 12, 18, 0, 0, 0, time.UTC)
	assert.Empty(t, ActiveOn(checkoutAfternoon, []models.Booking{b}))
}

func TestActiveOn_QueryInOtherZone(t *testing.T) {
	b := models.Booking{BookingID: "b1", CheckInDate: day("2024-01-10"), CheckOutDate: day("2024-01-12")}
	bookings := []models.Booking{b}

	east := time.FixedZone("UTC+7", 7*60*60)
	assert.Len(t, ActiveOn(time.Date(2024, 1, 10, 9, 0, 0, 0, east), bookings), 1)
	assert.Len(t, ActiveOn(time.Date(2024, 1, 11, 9, 0, 0, 0, east), bookings), 1)
	assert.Empty(t, ActiveOn(time.Date(2024, 1, 12, 9, 0, 0, 0, east), bookings))

	west := time.FixedZone("UTC-5", -5*60*60)
	assert.Empty(t, ActiveOn(time.Date(2024, 1, 9, 22, 0, 0, 0, west), bookings))
	assert.Len(t, ActiveOn(time.Date(2024, 1, 10, 22, 0, 0, 0, west), bookings), 1)
	assert.Empty(t, ActiveOn(time.Date(2024, 1, 12, 22, 0, 0, 0, west), bookings))
}

func TestActiveOn_BookingInOtherZone(t *testing.T) {
	east := time.FixedZone("UTC+7", 7*60*60)
	b := models.Booking{
		BookingID:    "b1",
		CheckInDate:  time.Date(2024, 1, 10, 0, 0, 0, 0, east),
		CheckOutDate: time.Date(2024, 1, 12, 0, 0, 0, 0, east),
	}

	assert.Len(t, ActiveOn(day("2024-01-10"), []models.Booking{b}), 1)
	assert.Empty(t, ActiveOn(day("2024-01-12"), []models.Booking{b}))
}

func TestActiveOn_KeepsOrderAndStatus(t *testing.T) {
	bookings := []models.Booking{
		{BookingID: "b1", CheckInDate: day("2024-01-01"), CheckOutDate: day("2024-01-05"), Status: models.BookingStatusCancelled},
		{BookingID: "b2", CheckInDate: day("2024-01-06"), CheckOutDate: day("2024-01-07")},
		{BookingID: "b3", CheckInDate: day("2024-01-03"), CheckOutDate: day("2024-01-04")},
	}

	got := ActiveOn(day("2024-01-03"), bookings)
	require.Len(t, got, 2)
	assert.Equal(t, "b1", got[0].BookingID)
	assert.Equal(t, "b3", got[1].BookingID)
}

func TestActiveOn_Empty(t *testing.T) {
	got := ActiveOn(day("2024-01-03"), nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestWeek(t *testing.T) {
	bookings := []models.Booking{
		{BookingID: "b1", CheckInDate: day("2024-01-10"), CheckOutDate: day("2024-01-12"), Status: models.BookingStatusConfirmed},
		{BookingID: "b2", CheckInDate: day("2024-01-10"), CheckOutDate: day("2024-01-11"), Status: models.BookingStatusCancelled},
	}

	week := Week(day("2024-01-10"), day("2024-01-10"), 0, bookings)
	require.Len(t, week, DefaultCalendarDays)

	assert.Equal(t, "Today", week[0].Label)
	assert.Equal(t, "Tomorrow", week[1].Label)
	assert.Equal(t, "Jan 12", week[2].Label)

	require.Len(t, week[0].Bookings, 1)
	assert.Equal(t, "b1", week[0].Bookings[0].BookingID)
	assert.Len(t, week[1].Bookings, 1)
	assert.Empty(t, week[2].Bookings)
	assert.Equal(t, day("2024-01-16"), week[6].Date)
}

func TestWeek_FromOtherZone(t *testing.T) {
	bookings := []models.Booking{
		{BookingID: "b1", CheckInDate: day("2024-01-10"), CheckOutDate: day("2024-01-12"), Status: models.BookingStatusConfirmed},
	}
	east := time.FixedZone("UTC+7", 7*60*60)
	now := time.Date(2024, 1, 10, 9, 0, 0, 0, east)

	week := Week(now, now, 3, bookings)
	require.Len(t, week, 3)

	assert.Equal(t, day("2024-01-10"), week[0].Date)
	assert.Equal(t, "Today", week[0].Label)
	assert.Len(t, week[0].Bookings, 1)
	assert.Len(t, week[1].Bookings, 1)
	assert.Empty(t, week[2].Bookings)
}

func TestStatsService_Dashboard(t *testing.T) {
	bookings := newBookingService(
		models.Booking{BookingID: "b1", TotalAmount: 120.5},
		models.Booking{BookingID: "b2", TotalAmount: 79.5, Status: models.BookingStatusCancelled},
	)
	rooms := newRoomService(
		models.Room{RoomID: "r1", Status: models.RoomStatusAvailable},
		models.Room{RoomID: "r2", Status: models.RoomStatusOccupied},
		models.Room{RoomID: "r3", Status: models.RoomStatusMaintenance},
	)

	stats := NewStatsService(bookings, rooms).Dashboard()

	assert.Equal(t, 2, stats.TotalBookings)
	assert.Equal(t, 200.0, stats.TotalRevenue)
	assert.Equal(t, 1, stats.AvailableRooms)
	assert.Equal(t, 67, stats.OccupancyRate)
}

func TestStatsService_NoRooms(t *testing.T) {
	stats := NewStatsService(newBookingService(), newRoomService()).Dashboard()
	assert.Equal(t, DashboardStats{}, stats)
}
