package booking

import "github.com/shopspring/decimal"

// Pricing is pure decimal arithmetic. Totals are currency amounts, so no
// binary floating point anywhere on this path.

// HotelTotal is price_per_night * nights * guests.
func HotelTotal(pricePerNight decimal.Decimal, nights int64, guests int) decimal.Decimal {
	return pricePerNight.
		Mul(decimal.NewFromInt(nights)).
		Mul(decimal.NewFromInt(int64(guests)))
}

// SeatTotal prices tours and excursions: price * guests.
func SeatTotal(price decimal.Decimal, guests int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(guests)))
}
