package booking

import (
	"fmt"
	"time"

	"tourista/internal/domain"
)

// Intent is the normalized, validated description of what the user wants to
// book, prior to pricing and reservation.
type Intent struct {
	Product domain.ProductRef
	Stay    *domain.Stay
	Guests  int
}

// NormalizeIntent enforces the request-shape invariants: exactly one product,
// stay dates present iff the product is a hotel, check_out strictly after
// check_in, guests at least 1 (defaulting to 1 when omitted). It has no side
// effects.
func NormalizeIntent(req CreateBookingRequest) (*Intent, error) {
	var refs []domain.ProductRef
	if req.HotelID != nil {
		refs = append(refs, domain.ProductRef{Type: domain.ProductHotel, ID: *req.HotelID})
	}
	if req.TourID != nil {
		refs = append(refs, domain.ProductRef{Type: domain.ProductTour, ID: *req.TourID})
	}
	if req.ExcursionID != nil {
		refs = append(refs, domain.ProductRef{Type: domain.ProductExcursion, ID: *req.ExcursionID})
	}
	if len(refs) != 1 {
		return nil, ErrProductSelection
	}

	intent := &Intent{Product: refs[0], Guests: 1}

	if req.Guests != nil {
		if *req.Guests < 1 {
			return nil, ErrGuestCount
		}
		intent.Guests = *req.Guests
	}

	if intent.Product.Type != domain.ProductHotel {
		if req.CheckIn != nil || req.CheckOut != nil {
			return nil, ErrUnexpectedStayDates
		}
		return intent, nil
	}

	if req.CheckIn == nil || req.CheckOut == nil {
		return nil, ErrMissingStayDates
	}

	checkIn, err := parseDate(*req.CheckIn)
	if err != nil {
		return nil, err
	}
	checkOut, err := parseDate(*req.CheckOut)
	if err != nil {
		return nil, err
	}
	if !checkOut.After(checkIn) {
		return nil, ErrInvalidDateRange
	}

	intent.Stay = &domain.Stay{CheckIn: checkIn, CheckOut: checkOut}
	return intent, nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad date %q", ErrInvalidDateRange, s)
	}
	return t.UTC(), nil
}
