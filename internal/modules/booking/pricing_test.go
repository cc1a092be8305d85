package booking

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestHotelTotal(t *testing.T) {
	// 3 nights x 2 guests x 100/night = 600
	got := HotelTotal(decimal.RequireFromString("100"), 3, 2)
	assert.True(t, got.Equal(decimal.RequireFromString("600")), "got %s", got)
}

func TestHotelTotal_FractionalPrice(t *testing.T) {
	got := HotelTotal(decimal.RequireFromString("99.99"), 2, 3)
	assert.True(t, got.Equal(decimal.RequireFromString("599.94")), "got %s", got)
}

func TestSeatTotal(t *testing.T) {
	got := SeatTotal(decimal.RequireFromString("1000"), 3)
	assert.True(t, got.Equal(decimal.RequireFromString("3000")), "got %s", got)
}

func TestSeatTotal_SingleGuest(t *testing.T) {
	got := SeatTotal(decimal.RequireFromString("25.50"), 1)
	assert.True(t, got.Equal(decimal.RequireFromString("25.50")), "got %s", got)
}
