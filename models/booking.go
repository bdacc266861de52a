package models

import (
	"time"
)

const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusPending   = "pending"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

const (
	PaymentStatusPending = "pending"
	PaymentStatusPartial = "partial"
	PaymentStatusPaid    = "paid"
)

// Booking references a guest and a room by id. Neither reference is checked
// against its store, and check-in/check-out ordering is not enforced.
type Booking struct {
	BookingID     string    `json:"bookingId"`
	GuestID       string    `json:"guestId"`
	RoomID        string    `json:"roomId"`
	CheckInDate   time.Time `json:"checkInDate"`
	CheckOutDate  time.Time `json:"checkOutDate"`
	TotalAmount   float64   `json:"totalAmount"`
	PaymentStatus string    `json:"paymentStatus"`
	Status        string    `json:"status"`
}

func (b Booking) Clone() Booking { return b }

type BookingPatch struct {
	GuestID       *string    `json:"guestId"`
	RoomID        *string    `json:"roomId"`
	CheckInDate   *time.Time `json:"checkInDate"`
	CheckOutDate  *time.Time `json:"checkOutDate"`
	TotalAmount   *float64   `json:"totalAmount"`
	PaymentStatus *string    `json:"paymentStatus"`
	Status        *string    `json:"status"`
}

func (p BookingPatch) Apply(b *Booking) {
	if p.GuestID != nil {
		b.GuestID = *p.GuestID
	}
	if p.RoomID != nil {
		b.RoomID = *p.RoomID
	}
	if p.CheckInDate != nil {
		b.CheckInDate = *p.CheckInDate
	}
	if p.CheckOutDate != nil {
		b.CheckOutDate = *p.CheckOutDate
	}
	if p.TotalAmount != nil {
		b.TotalAmount = *p.TotalAmount
	}
	if p.PaymentStatus != nil {
		b.PaymentStatus = *p.PaymentStatus
	}
	if p.Status != nil {
		b.Status = *p.Status
	}
}

func IsValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusConfirmed, BookingStatusPending, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

func IsValidPaymentStatus(s string) bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPartial, PaymentStatusPaid:
		return true
	}
	return false
}
