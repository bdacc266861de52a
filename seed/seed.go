// Package seed provides the dataset the entity stores start from.
package seed

import (
	"embed"
	"encoding/json"
	"fmt"

	"hotel-dashboard/models"
)

//go:embed data/*.json
var files embed.FS

type Dataset struct {
	Guests   []models.Guest
	Rooms    []models.Room
	Bookings []models.Booking
}

// Embedded decodes the dataset compiled into the binary.
func Embedded() (Dataset, error) {
	var ds Dataset
	if err := decode("data/guests.json", &ds.Guests); err != nil {
		return Dataset{}, err
	}
	if err := decode("data/rooms.json", &ds.Rooms); err != nil {
		return Dataset{}, err
	}
	if err := decode("data/bookings.json", &ds.Bookings); err != nil {
		return Dataset{}, err
	}
	return ds, nil
}

func decode(name string, v any) error {
	raw, err := files.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read seed %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode seed %s: %w", name, err)
	}
	return nil
}
