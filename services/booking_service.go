// services/booking_service.go
package services

import (
	"errors"
	"log"

	"hotel-dashboard/models"
	"hotel-dashboard/store"
)

const bookingIDPrefix = "booking_"

// BookingService keeps bookings in memory. Guest and room ids are stored as
// given; neither is looked up.
type BookingService struct {
	Store   *store.Store[models.Booking]
	Latency store.Latency
	IDs     store.IDGenerator
}

func NewBookingService(s *store.Store[models.Booking], latency store.Latency, ids store.IDGenerator) *BookingService {
	return &BookingService{Store: s, Latency: latency, IDs: ids}
}

func NewBookingStore(seed []models.Booking) *store.Store[models.Booking] {
	return store.New(seed, func(b models.Booking) string { return b.BookingID }, models.Booking.Clone)
}

func (s *BookingService) GetAll() []models.Booking {
	s.Latency.Wait(store.OpGetAll)

	bookings := s.Store.All()
	log.Printf("⬅️ BookingService.GetAll ok: %d bookings", len(bookings))
	return bookings
}

func (s *BookingService) GetByID(id string) (models.Booking, bool) {
	s.Latency.Wait(store.OpGetByID)

	booking, ok := s.Store.Find(id)
	log.Printf("⬅️ BookingService.GetByID id=%s found=%t", id, ok)
	return booking, ok
}

func (s *BookingService) Create(booking models.Booking) models.Booking {
	s.Latency.Wait(store.OpCreate)

	booking.BookingID = s.IDs.NewID(bookingIDPrefix)
	if booking.Status == "" {
		booking.Status = models.BookingStatusConfirmed
	}

	created := s.Store.Append(booking)
	log.Printf("⬅️ BookingService.Create ok: booking_id=%s guest=%s room=%s", created.BookingID, created.GuestID, created.RoomID)
	return created
}

func (s *BookingService) Update(id string, patch models.BookingPatch) (models.Booking, error) {
	s.Latency.Wait(store.OpUpdate)
	log.Printf("➡️ BookingService.Update id=%s", id)

	updated, err := s.Store.Replace(id, patch.Apply)
	if errors.Is(err, store.ErrNotFound) {
		log.Printf("⚠️ BookingService.Update not found id=%s", id)
		return models.Booking{}, ErrBookingNotFound
	}
	log.Printf("⬅️ BookingService.Update ok: booking_id=%s", id)
	return updated, err
}

// Delete is a hard delete; see Cancel for the status transition.
func (s *BookingService) Delete(id string) (models.Booking, error) {
	s.Latency.Wait(store.OpDelete)
	log.Printf("➡️ BookingService.Delete id=%s", id)

	deleted, err := s.Store.Remove(id)
	if errors.Is(err, store.ErrNotFound) {
		log.Printf("⚠️ BookingService.Delete not found id=%s", id)
		return models.Booking{}, ErrBookingNotFound
	}
	log.Printf("⬅️ BookingService.Delete ok: booking_id=%s", id)
	return deleted, err
}

// Cancel keeps the booking and moves it to the cancelled status.
func (s *BookingService) Cancel(id string) (models.Booking, error) {
	status := models.BookingStatusCancelled
	cancelled, err := s.Update(id, models.BookingPatch{Status: &status})
	if err != nil {
		return models.Booking{}, err
	}
	log.Printf("⬅️ BookingService.Cancel ok: booking_id=%s", id)
	return cancelled, nil
}
