package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Excursion struct {
	ID            int64           `json:"id"`
	Title         string          `json:"title"`
	Location      string          `json:"location"`
	DurationHours int             `json:"duration_hours"`
	Price         decimal.Decimal `json:"price"`
	Description   string          `json:"description,omitempty"`
	IsAvailable   bool            `json:"is_available"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
