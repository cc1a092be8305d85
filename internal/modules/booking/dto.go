package booking

import (
	"time"

	"tourista/internal/domain"
)

const dateLayout = "2006-01-02"

type CreateBookingRequest struct {
	HotelID     *int64  `json:"hotel_id"`
	TourID      *int64  `json:"tour_id"`
	ExcursionID *int64  `json:"excursion_id"`
	CheckIn     *string `json:"check_in"`
	CheckOut    *string `json:"check_out"`
	Guests      *int    `json:"guests"`
}

type BookingResponse struct {
	ID          int64      `json:"id"`
	Reference   string     `json:"reference"`
	ProductType string     `json:"product_type"`
	ProductID   int64      `json:"product_id"`
	CheckIn     *string    `json:"check_in,omitempty"`
	CheckOut    *string    `json:"check_out,omitempty"`
	Guests      int        `json:"guests"`
	TotalPrice  string     `json:"total_price"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CanceledAt  *time.Time `json:"canceled_at,omitempty"`
}

func toBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:          b.ID,
		Reference:   b.Reference.String(),
		ProductType: string(b.Product.Type),
		ProductID:   b.Product.ID,
		Guests:      b.Guests,
		TotalPrice:  b.TotalPrice.StringFixed(2),
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
		CanceledAt:  b.CanceledAt,
	}

	if b.Stay != nil {
		ci := b.Stay.CheckIn.Format(dateLayout)
		co := b.Stay.CheckOut.Format(dateLayout)
		resp.CheckIn = &ci
		resp.CheckOut = &co
	}

	return resp
}

func toBookingResponses(bs []domain.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bs))
	for i := range bs {
		out = append(out, toBookingResponse(&bs[i]))
	}
	return out
}
