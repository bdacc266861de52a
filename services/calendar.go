package services

import (
	"time"

	"hotel-dashboard/models"
)

const DefaultCalendarDays = 7

// StartOfDay returns midnight UTC of the calendar date t shows in its own
// location. Day comparisons use these values, so a query date and a booking
// recorded in different zones still agree on which day they name.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ActiveOn returns the bookings whose stay covers date, treating each stay
// as the half-open range [check-in day, check-out day). The check-out day is
// free again. Input order is kept and nothing is filtered by status.
func ActiveOn(date time.Time, bookings []models.Booking) []models.Booking {
	day := StartOfDay(date)

	out := make([]models.Booking, 0)
	for _, b := range bookings {
		if !day.Before(StartOfDay(b.CheckInDate)) && day.Before(StartOfDay(b.CheckOutDate)) {
			out = append(out, b)
		}
	}
	return out
}

type CalendarDay struct {
	Date     time.Time        `json:"date"`
	Label    string           `json:"label"`
	Bookings []models.Booking `json:"bookings"`
}

// Week lays out days consecutive calendar days starting at from, each with
// its active bookings. Cancelled bookings are left off the strip. today is
// used for the "Today" and "Tomorrow" labels.
func Week(from, today time.Time, days int, bookings []models.Booking) []CalendarDay {
	if days <= 0 {
		days = DefaultCalendarDays
	}

	live := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Status != models.BookingStatusCancelled {
			live = append(live, b)
		}
	}

	start := StartOfDay(from)
	out := make([]CalendarDay, 0, days)
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)
		out = append(out, CalendarDay{
			Date:     day,
			Label:    dayLabel(day, today),
			Bookings: ActiveOn(day, live),
		})
	}
	return out
}

func dayLabel(day, today time.Time) string {
	t := StartOfDay(today)
	switch {
	case day.Equal(t):
		return "Today"
	case day.Equal(t.AddDate(0, 0, 1)):
		return "Tomorrow"
	}
	return day.Format("Jan 02")
}
