package domain

import "errors"

var (
	ErrNotFound             = errors.New("not found")
	ErrInsufficientCapacity = errors.New("not enough available rooms")
	ErrAlreadyCanceled      = errors.New("booking already canceled")
	ErrInvalidTransition    = errors.New("invalid booking status transition")
)
