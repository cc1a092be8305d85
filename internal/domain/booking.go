package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCanceled  BookingStatus = "canceled"
)

type ProductType string

const (
	ProductHotel     ProductType = "hotel"
	ProductTour      ProductType = "tour"
	ProductExcursion ProductType = "excursion"
)

// ProductRef points at exactly one bookable product. Constructing a booking
// through a validated intent is the only supported way to obtain one, which
// rules out the "zero or several products selected" states at the type level.
type ProductRef struct {
	Type ProductType `json:"type"`
	ID   int64       `json:"id"`
}

// Stay is a hotel check-in/check-out window. Both dates are day-granular UTC
// midnights; CheckOut is strictly after CheckIn.
type Stay struct {
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
}

func (s Stay) Nights() int64 {
	return int64(s.CheckOut.Sub(s.CheckIn) / (24 * time.Hour))
}

type Booking struct {
	ID         int64           `json:"id"`
	Reference  uuid.UUID       `json:"reference"`
	UserID     int64           `json:"user_id"`
	Product    ProductRef      `json:"product"`
	Stay       *Stay           `json:"stay,omitempty"`
	Guests     int             `json:"guests"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Status     BookingStatus   `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	CanceledAt *time.Time      `json:"canceled_at,omitempty"`
}

// transitions is the full set of legal status changes. canceled is terminal.
var transitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingConfirmed},
	BookingConfirmed: {BookingCanceled},
}

func (b *Booking) transition(to BookingStatus) error {
	for _, allowed := range transitions[b.Status] {
		if allowed == to {
			b.Status = to
			return nil
		}
	}
	if b.Status == BookingCanceled && to == BookingCanceled {
		return ErrAlreadyCanceled
	}
	return ErrInvalidTransition
}

// Confirm moves a freshly built pending booking to confirmed. Bookings are
// confirmed on successful reservation; there is no payment step in between.
func (b *Booking) Confirm() error {
	return b.transition(BookingConfirmed)
}

// MarkCanceled moves the booking to its terminal state and records when.
func (b *Booking) MarkCanceled(at time.Time) error {
	if err := b.transition(BookingCanceled); err != nil {
		return err
	}
	b.CanceledAt = &at
	return nil
}
