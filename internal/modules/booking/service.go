package booking

import (
	"context"

	"github.com/google/uuid"

	"tourista/internal/domain"
)

// Service owns the booking lifecycle: validate, price, reserve, persist on
// creation; guarded release on cancellation. Nothing here retries — a failed
// capacity claim must surface to the caller, since a blind retry without an
// idempotency key could double-reserve.
type Service struct {
	store   BookingStore
	catalog Catalog
	notifs  Notifier
}

func NewService(store BookingStore, catalog Catalog, notifs Notifier) *Service {
	return &Service{store: store, catalog: catalog, notifs: notifs}
}

func (s *Service) CreateBooking(ctx context.Context, userID int64, req CreateBookingRequest) (*domain.Booking, error) {
	intent, err := NormalizeIntent(req)
	if err != nil {
		return nil, err
	}

	b := &domain.Booking{
		Reference: uuid.New(),
		UserID:    userID,
		Product:   intent.Product,
		Stay:      intent.Stay,
		Guests:    intent.Guests,
		Status:    domain.BookingPending,
	}

	// Price from a fresh snapshot; the snapshot is never cached across
	// requests because hotel capacity moves underneath us.
	switch intent.Product.Type {
	case domain.ProductHotel:
		h, err := s.catalog.GetHotel(ctx, intent.Product.ID)
		if err != nil {
			return nil, err
		}
		b.TotalPrice = HotelTotal(h.PricePerNight, intent.Stay.Nights(), intent.Guests)
	case domain.ProductTour:
		t, err := s.catalog.GetTour(ctx, intent.Product.ID)
		if err != nil {
			return nil, err
		}
		b.TotalPrice = SeatTotal(t.Price, intent.Guests)
	case domain.ProductExcursion:
		e, err := s.catalog.GetExcursion(ctx, intent.Product.ID)
		if err != nil {
			return nil, err
		}
		b.TotalPrice = SeatTotal(e.Price, intent.Guests)
	}

	if err := b.Confirm(); err != nil {
		return nil, err
	}

	// Reservation and insert happen in one transaction inside the store; a
	// failure after the rooms were claimed rolls the claim back.
	if err := s.store.Create(ctx, b); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyBookingCreated(ctx, b)
	}

	return b, nil
}

func (s *Service) CancelBooking(ctx context.Context, userID, bookingID int64) (*domain.Booking, error) {
	b, err := s.store.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrForbidden
	}

	canceled, err := s.store.Cancel(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyBookingCanceled(ctx, canceled)
	}

	return canceled, nil
}

func (s *Service) ListBookings(ctx context.Context, userID int64, productType *domain.ProductType) ([]domain.Booking, error) {
	return s.store.ListByUser(ctx, userID, productType)
}

func (s *Service) GetBooking(ctx context.Context, userID, bookingID int64) (*domain.Booking, error) {
	b, err := s.store.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrForbidden
	}
	return b, nil
}
