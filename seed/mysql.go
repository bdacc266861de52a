package seed

import (
	"fmt"
	"log"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hotel-dashboard/models"
)

// Rows in the seed tables. Position keeps the dataset order stable across
// loads since the stores are order-preserving.

type guestRow struct {
	GuestID        string                             `gorm:"column:guest_id;primaryKey;size:64"`
	Position       int                                `gorm:"column:position;index"`
	Name           string                             `gorm:"column:name;size:255"`
	Email          string                             `gorm:"column:email;size:255"`
	Phone          string                             `gorm:"column:phone;size:64"`
	Address        datatypes.JSONType[models.Address] `gorm:"column:address"`
	Preferences    datatypes.JSONSlice[string]        `gorm:"column:preferences"`
	BookingHistory datatypes.JSONSlice[string]        `gorm:"column:booking_history"`
}

func (guestRow) TableName() string { return "seed_guests" }

type roomRow struct {
	RoomID     string  `gorm:"column:room_id;primaryKey;size:64"`
	Position   int     `gorm:"column:position;index"`
	RoomNumber string  `gorm:"column:room_number;size:50"`
	Type       string  `gorm:"column:type;size:64"`
	Price      float64 `gorm:"column:price"`
	Status     string  `gorm:"column:status;size:32"`
}

func (roomRow) TableName() string { return "seed_rooms" }

type bookingRow struct {
	BookingID     string         `gorm:"column:booking_id;primaryKey;size:64"`
	Position      int            `gorm:"column:position;index"`
	GuestID       string         `gorm:"column:guest_id;size:64"`
	RoomID        string         `gorm:"column:room_id;size:64"`
	CheckInDate   datatypes.Date `gorm:"column:check_in_date"`
	CheckOutDate  datatypes.Date `gorm:"column:check_out_date"`
	TotalAmount   float64        `gorm:"column:total_amount"`
	PaymentStatus string         `gorm:"column:payment_status;size:32"`
	Status        string         `gorm:"column:status;size:32"`
}

func (bookingRow) TableName() string { return "seed_bookings" }

func guestToRow(g models.Guest, pos int) guestRow {
	return guestRow{
		GuestID:        g.GuestID,
		Position:       pos,
		Name:           g.Name,
		Email:          g.Email,
		Phone:          g.Phone,
		Address:        datatypes.NewJSONType(g.Address),
		Preferences:    datatypes.JSONSlice[string](g.Preferences),
		BookingHistory: datatypes.JSONSlice[string](g.BookingHistory),
	}
}

func (r guestRow) toModel() models.Guest {
	prefs := []string(r.Preferences)
	if prefs == nil {
		prefs = []string{}
	}
	history := []string(r.BookingHistory)
	if history == nil {
		history = []string{}
	}
	return models.Guest{
		GuestID:        r.GuestID,
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		Address:        r.Address.Data(),
		Preferences:    prefs,
		BookingHistory: history,
	}
}

func roomToRow(r models.Room, pos int) roomRow {
	return roomRow{
		RoomID:     r.RoomID,
		Position:   pos,
		RoomNumber: r.RoomNumber,
		Type:       r.Type,
		Price:      r.Price,
		Status:     r.Status,
	}
}

func (r roomRow) toModel() models.Room {
	return models.Room{
		RoomID:     r.RoomID,
		RoomNumber: r.RoomNumber,
		Type:       r.Type,
		Price:      r.Price,
		Status:     r.Status,
	}
}

// utcDate keeps the calendar date of t and places it at midnight UTC, the
// form every other booking date in the app takes.
func utcDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func bookingToRow(b models.Booking, pos int) bookingRow {
	return bookingRow{
		BookingID:     b.BookingID,
		Position:      pos,
		GuestID:       b.GuestID,
		RoomID:        b.RoomID,
		CheckInDate:   datatypes.Date(utcDate(b.CheckInDate)),
		CheckOutDate:  datatypes.Date(utcDate(b.CheckOutDate)),
		TotalAmount:   b.TotalAmount,
		PaymentStatus: b.PaymentStatus,
		Status:        b.Status,
	}
}

func (r bookingRow) toModel() models.Booking {
	return models.Booking{
		BookingID:     r.BookingID,
		GuestID:       r.GuestID,
		RoomID:        r.RoomID,
		CheckInDate:   utcDate(time.Time(r.CheckInDate)),
		CheckOutDate:  utcDate(time.Time(r.CheckOutDate)),
		TotalAmount:   r.TotalAmount,
		PaymentStatus: r.PaymentStatus,
		Status:        r.Status,
	}
}

// LoadFromMySQL reads the dataset from the seed tables. Tables are created
// if missing and filled from fallback when empty. Nothing is written back
// after startup.
func LoadFromMySQL(db *gorm.DB, fallback Dataset) (Dataset, error) {
	if err := db.AutoMigrate(&guestRow{}, &roomRow{}, &bookingRow{}); err != nil {
		return Dataset{}, fmt.Errorf("migrate seed tables: %w", err)
	}
	if err := fillIfEmpty(db, fallback); err != nil {
		return Dataset{}, err
	}

	var guests []guestRow
	if err := db.Order("position ASC").Find(&guests).Error; err != nil {
		return Dataset{}, fmt.Errorf("load seed guests: %w", err)
	}
	var rooms []roomRow
	if err := db.Order("position ASC").Find(&rooms).Error; err != nil {
		return Dataset{}, fmt.Errorf("load seed rooms: %w", err)
	}
	var bookings []bookingRow
	if err := db.Order("position ASC").Find(&bookings).Error; err != nil {
		return Dataset{}, fmt.Errorf("load seed bookings: %w", err)
	}

	ds := Dataset{
		Guests:   make([]models.Guest, 0, len(guests)),
		Rooms:    make([]models.Room, 0, len(rooms)),
		Bookings: make([]models.Booking, 0, len(bookings)),
	}
	for _, r := range guests {
		ds.Guests = append(ds.Guests, r.toModel())
	}
	for _, r := range rooms {
		ds.Rooms = append(ds.Rooms, r.toModel())
	}
	for _, r := range bookings {
		ds.Bookings = append(ds.Bookings, r.toModel())
	}

	log.Printf("✅ Seed loaded from MySQL: %d guests, %d rooms, %d bookings", len(ds.Guests), len(ds.Rooms), len(ds.Bookings))
	return ds, nil
}

func fillIfEmpty(db *gorm.DB, ds Dataset) error {
	var guestCount int64
	if err := db.Model(&guestRow{}).Count(&guestCount).Error; err != nil {
		return fmt.Errorf("count seed guests: %w", err)
	}
	if guestCount == 0 && len(ds.Guests) > 0 {
		rows := make([]guestRow, 0, len(ds.Guests))
		for i, g := range ds.Guests {
			rows = append(rows, guestToRow(g, i))
		}
		if err := db.Create(&rows).Error; err != nil {
			return fmt.Errorf("seed guests: %w", err)
		}
		log.Println("Guests seeded")
	}

	var roomCount int64
	if err := db.Model(&roomRow{}).Count(&roomCount).Error; err != nil {
		return fmt.Errorf("count seed rooms: %w", err)
	}
	if roomCount == 0 && len(ds.Rooms) > 0 {
		rows := make([]roomRow, 0, len(ds.Rooms))
		for i, r := range ds.Rooms {
			rows = append(rows, roomToRow(r, i))
		}
		if err := db.Create(&rows).Error; err != nil {
			return fmt.Errorf("seed rooms: %w", err)
		}
		log.Println("Rooms seeded")
	}

	var bookingCount int64
	if err := db.Model(&bookingRow{}).Count(&bookingCount).Error; err != nil {
		return fmt.Errorf("count seed bookings: %w", err)
	}
	if bookingCount == 0 && len(ds.Bookings) > 0 {
		rows := make([]bookingRow, 0, len(ds.Bookings))
		for i, b := range ds.Bookings {
			rows = append(rows, bookingToRow(b, i))
		}
		if err := db.Create(&rows).Error; err != nil {
			return fmt.Errorf("seed bookings: %w", err)
		}
		log.Println("Bookings seeded")
	}
	return nil
}
