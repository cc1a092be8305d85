package booking

import "errors"

// Client input errors. Reported once, never retried.
var (
	ErrProductSelection    = errors.New("exactly one of hotel_id, tour_id, excursion_id must be set")
	ErrMissingStayDates    = errors.New("hotel booking requires check_in and check_out")
	ErrInvalidDateRange    = errors.New("check_out must be after check_in")
	ErrUnexpectedStayDates = errors.New("check_in and check_out are allowed only for hotel bookings")
	ErrGuestCount          = errors.New("guests must be at least 1")
)

var ErrForbidden = errors.New("forbidden")
