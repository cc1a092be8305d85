package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TourType string

const (
	TourAdventure TourType = "ADVENTURE"
	TourCultural  TourType = "CULTURAL"
	TourLeisure   TourType = "LEISURE"
	TourOther     TourType = "OTHER"
)

type Tour struct {
	ID           int64           `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description,omitempty"`
	Destination  string          `json:"destination"`
	DurationDays int             `json:"duration_days"`
	StartDate    *time.Time      `json:"start_date,omitempty"`
	EndDate      *time.Time      `json:"end_date,omitempty"`
	Price        decimal.Decimal `json:"price"`
	TourType     TourType        `json:"tour_type"`
	// Capacity is informational: seat inventory is not decremented on booking.
	Capacity  int       `json:"capacity"`
	HotelID   *int64    `json:"hotel_id,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
