package booking

import (
	"context"

	"tourista/internal/domain"
)

// Catalog is the read-only product lookup. Implementations return
// domain.ErrNotFound for unknown ids.
type Catalog interface {
	GetHotel(ctx context.Context, id int64) (*domain.Hotel, error)
	GetTour(ctx context.Context, id int64) (*domain.Tour, error)
	GetExcursion(ctx context.Context, id int64) (*domain.Excursion, error)
}

// BookingStore persists bookings. Create claims hotel room inventory and
// inserts the row in one transaction (domain.ErrInsufficientCapacity when the
// hotel is out of rooms); Cancel flips a confirmed booking to canceled and
// releases the rooms in one transaction (domain.ErrAlreadyCanceled on a
// repeat).
type BookingStore interface {
	Create(ctx context.Context, b *domain.Booking) error
	Cancel(ctx context.Context, id int64) (*domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID int64, productType *domain.ProductType) ([]domain.Booking, error)
}

// Notifier sends best-effort booking alerts. Failures are logged by the
// implementation and never fail the booking operation.
type Notifier interface {
	NotifyBookingCreated(ctx context.Context, b *domain.Booking) error
	NotifyBookingCanceled(ctx context.Context, b *domain.Booking) error
}
