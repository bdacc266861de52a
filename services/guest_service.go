package services

import (
	"errors"
	"log"
	"strings"

	"hotel-dashboard/models"
	"hotel-dashboard/store"
)

const guestIDPrefix = "guest_"

type GuestService struct {
	Store   *store.Store[models.Guest]
	Latency store.Latency
	IDs     store.IDGenerator
}

func NewGuestService(s *store.Store[models.Guest], latency store.Latency, ids store.IDGenerator) *GuestService {
	return &GuestService{Store: s, Latency: latency, IDs: ids}
}

// NewGuestStore wraps seed records in a guest store.
func NewGuestStore(seed []models.Guest) *store.Store[models.Guest] {
	return store.New(seed, func(g models.Guest) string { return g.GuestID }, models.Guest.Clone)
}

func (s *GuestService) GetAll() []models.Guest {
	s.Latency.Wait(store.OpGetAll)

	guests := s.Store.All()
	log.Printf("⬅️ GuestService.GetAll ok: %d guests", len(guests))
	return guests
}

// GetByID reports false when no guest has the id; that is not an error.
func (s *GuestService) GetByID(id string) (models.Guest, bool) {
	s.Latency.Wait(store.OpGetByID)

	guest, ok := s.Store.Find(id)
	log.Printf("⬅️ GuestService.GetByID id=%s found=%t", id, ok)
	return guest, ok
}

// ----------------------------------------------------
// CREATE: id is always assigned here, booking history always starts empty
// ----------------------------------------------------
func (s *GuestService) Create(guest models.Guest) models.Guest {
	s.Latency.Wait(store.OpCreate)

	guest.GuestID = s.IDs.NewID(guestIDPrefix)
	guest.BookingHistory = []string{}
	if guest.Preferences == nil {
		guest.Preferences = []string{}
	}

	created := s.Store.Append(guest)
	log.Printf("⬅️ GuestService.Create ok: guest_id=%s", created.GuestID)
	return created
}

func (s *GuestService) Update(id string, patch models.GuestPatch) (models.Guest, error) {
	s.Latency.Wait(store.OpUpdate)
	log.Printf("➡️ GuestService.Update id=%s", id)

	updated, err := s.Store.Replace(id, patch.Apply)
	if errors.Is(err, store.ErrNotFound) {
		log.Printf("⚠️ GuestService.Update not found id=%s", id)
		return models.Guest{}, ErrGuestNotFound
	}
	log.Printf("⬅️ GuestService.Update ok: guest_id=%s", id)
	return updated, err
}

// Delete removes the guest only; bookings that reference it are left alone.
func (s *GuestService) Delete(id string) (models.Guest, error) {
	s.Latency.Wait(store.OpDelete)
	log.Printf("➡️ GuestService.Delete id=%s", id)

	deleted, err := s.Store.Remove(id)
	if errors.Is(err, store.ErrNotFound) {
		log.Printf("⚠️ GuestService.Delete not found id=%s", id)
		return models.Guest{}, ErrGuestNotFound
	}
	log.Printf("⬅️ GuestService.Delete ok: guest_id=%s", id)
	return deleted, err
}

// Search matches term case-insensitively against name, email and phone.
// An empty term matches every guest.
func (s *GuestService) Search(term string) []models.Guest {
	guests := s.GetAll()

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return guests
	}

	out := make([]models.Guest, 0, len(guests))
	for _, g := range guests {
		if strings.Contains(strings.ToLower(g.Name), term) ||
			strings.Contains(strings.ToLower(g.Email), term) ||
			strings.Contains(strings.ToLower(g.Phone), term) {
			out = append(out, g)
		}
	}
	return out
}
