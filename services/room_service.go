package services

import (
	"errors"
	"log"

	"hotel-dashboard/models"
	"hotel-dashboard/store"
)

const roomIDPrefix = "room_"

type RoomService struct {
	Store   *store.Store[models.Room]
	Latency store.Latency
	IDs     store.IDGenerator
}

func NewRoomService(s *store.Store[models.Room], latency store.Latency, ids store.IDGenerator) *RoomService {
	return &RoomService{Store: s, Latency: latency, IDs: ids}
}

func NewRoomStore(seed []models.Room) *store.Store[models.Room] {
	return store.New(seed, func(r models.Room) string { return r.RoomID }, models.Room.Clone)
}

func (s *RoomService) GetAll() []models.Room {
	s.Latency.Wait(store.OpGetAll)

	rooms := s.Store.All()
	log.Printf("⬅️ RoomService.GetAll ok: %d rooms", len(rooms))
	return rooms
}

func (s *RoomService) GetByID(id string) (models.Room, bool) {
	s.Latency.Wait(store.OpGetByID)

	room, ok := s.Store.Find(id)
	log.Printf("⬅️ RoomService.GetByID id=%s found=%t", id, ok)
	return room, ok
}

func (s *RoomService) Create(room models.Room) models.Room {
	s.Latency.Wait(store.OpCreate)

	room.RoomID = s.IDs.NewID(roomIDPrefix)
	if room.Status == "" {
		room.Status = models.RoomStatusAvailable
	}

	created := s.Store.Append(room)
	log.Printf("⬅️ RoomService.Create ok: room_id=%s number=%s", created.RoomID, created.RoomNumber)
	return created
}

func (s *RoomService) Update(id string, patch models.RoomPatch) (models.Room, error) {
	s.Latency.Wait(store.OpUpdate)
	log.Printf("➡️ RoomService.Update id=%s", id)

	updated, err := s.Store.Replace(id, patch.Apply)
	if errors.Is(err, store.ErrNotFound) {
		log.Printf("⚠️ RoomService.Update not found id=%s", id)
		return models.Room{}, ErrRoomNotFound
	}
	log.Printf("⬅️ RoomService.Update ok: room_id=%s", id)
	return updated, err
}

func (s *RoomService) Delete(id string) (models.Room, error) {
	s.Latency.Wait(store.OpDelete)
	log.Printf("➡️ RoomService.Delete id=%s", id)

	deleted, err := s.Store.Remove(id)
	if errors.Is(err, store.ErrNotFound) {
		log.Printf("⚠️ RoomService.Delete not found id=%s", id)
		return models.Room{}, ErrRoomNotFound
	}
	log.Printf("⬅️ RoomService.Delete ok: room_id=%s", id)
	return deleted, err
}

// Available lists rooms a new booking can be placed in.
func (s *RoomService) Available() []models.Room {
	rooms := s.GetAll()
	out := make([]models.Room, 0, len(rooms))
	for _, r := range rooms {
		if r.Status == models.RoomStatusAvailable {
			out = append(out, r)
		}
	}
	return out
}
