package services

import "errors"

var (
	ErrGuestNotFound   = errors.New("guest not found")
	ErrRoomNotFound    = errors.New("room not found")
	ErrBookingNotFound = errors.New("booking not found")
)
