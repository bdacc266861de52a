package models

const (
	RoomStatusAvailable   = "available"
	RoomStatusOccupied    = "occupied"
	RoomStatusMaintenance = "maintenance"
	RoomStatusReserved    = "reserved"
)

type Room struct {
	RoomID     string  `json:"roomId"`
	RoomNumber string  `json:"roomNumber"`
	Type       string  `json:"type"`
	Price      float64 `json:"price"`
	Status     string  `json:"status"`
}

// Clone is a plain value copy; Room holds no reference fields.
func (r Room) Clone() Room { return r }

type RoomPatch struct {
	RoomNumber *string  `json:"roomNumber"`
	Type       *string  `json:"type"`
	Price      *float64 `json:"price"`
	Status     *string  `json:"status"`
}

func (p RoomPatch) Apply(r *Room) {
	if p.RoomNumber != nil {
		r.RoomNumber = *p.RoomNumber
	}
	if p.Type != nil {
		r.Type = *p.Type
	}
	if p.Price != nil {
		r.Price = *p.Price
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
}

// IsValidRoomStatus reports whether s is one of the known room states.
func IsValidRoomStatus(s string) bool {
	switch s {
	case RoomStatusAvailable, RoomStatusOccupied, RoomStatusMaintenance, RoomStatusReserved:
		return true
	}
	return false
}
