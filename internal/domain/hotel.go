package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Hotel struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Location       string          `json:"location"`
	Rating         decimal.Decimal `json:"rating"`
	Description    string          `json:"description,omitempty"`
	PricePerNight  decimal.Decimal `json:"price_per_night"`
	AvailableRooms int             `json:"available_rooms"`
	IsAvailable    bool            `json:"is_available"`
	HasWifi        bool            `json:"has_wifi"`
	HasPool        bool            `json:"has_pool"`
	HasBreakfast   bool            `json:"has_breakfast"`
	HasParking     bool            `json:"has_parking"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
