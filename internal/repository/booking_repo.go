package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"tourista/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID          int64           `gorm:"column:id;primaryKey"`
	Reference   uuid.UUID       `gorm:"column:reference;type:varchar(36);uniqueIndex"`
	UserID      int64           `gorm:"column:user_id;index"`
	HotelID     *int64          `gorm:"column:hotel_id"`
	TourID      *int64          `gorm:"column:tour_id"`
	ExcursionID *int64          `gorm:"column:excursion_id"`
	CheckIn     *time.Time      `gorm:"column:check_in"`
	CheckOut    *time.Time      `gorm:"column:check_out"`
	Guests      int             `gorm:"column:guests"`
	TotalPrice  decimal.Decimal `gorm:"column:total_price;type:numeric(10,2)"`
	Status      string          `gorm:"column:status;size:20"`
	CreatedAt   time.Time       `gorm:"column:created_at"`
	UpdatedAt   time.Time       `gorm:"column:updated_at"`
	CanceledAt  *time.Time      `gorm:"column:canceled_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	b := &domain.Booking{
		ID:         m.ID,
		Reference:  m.Reference,
		UserID:     m.UserID,
		Guests:     m.Guests,
		TotalPrice: m.TotalPrice,
		Status:     domain.BookingStatus(m.Status),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
		CanceledAt: m.CanceledAt,
	}

	switch {
	case m.HotelID != nil:
		b.Product = domain.ProductRef{Type: domain.ProductHotel, ID: *m.HotelID}
	case m.TourID != nil:
		b.Product = domain.ProductRef{Type: domain.ProductTour, ID: *m.TourID}
	case m.ExcursionID != nil:
		b.Product = domain.ProductRef{Type: domain.ProductExcursion, ID: *m.ExcursionID}
	}

	if m.CheckIn != nil && m.CheckOut != nil {
		b.Stay = &domain.Stay{CheckIn: *m.CheckIn, CheckOut: *m.CheckOut}
	}

	return b
}

func toBookingModel(b *domain.Booking) bookingModel {
	m := bookingModel{
		ID:         b.ID,
		Reference:  b.Reference,
		UserID:     b.UserID,
		Guests:     b.Guests,
		TotalPrice: b.TotalPrice,
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
		CanceledAt: b.CanceledAt,
	}

	id := b.Product.ID
	switch b.Product.Type {
	case domain.ProductHotel:
		m.HotelID = &id
	case domain.ProductTour:
		m.TourID = &id
	case domain.ProductExcursion:
		m.ExcursionID = &id
	}

	if b.Stay != nil {
		ci, co := b.Stay.CheckIn, b.Stay.CheckOut
		m.CheckIn = &ci
		m.CheckOut = &co
	}

	return m
}

// Create persists a booking, claiming hotel room inventory in the same
// transaction. If the insert fails after the rooms were decremented the
// rollback restores them, so inventory cannot leak.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if m.HotelID != nil {
			if err := reserveRooms(tx, *m.HotelID, m.Guests); err != nil {
				return err
			}
		}
		return tx.Create(&m).Error
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			// Referenced product or user disappeared between snapshot and insert.
			return domain.ErrNotFound
		}
		return err
	}

	*b = *toDomainBooking(m)
	return nil
}

// Cancel flips a confirmed booking to canceled and restores hotel rooms in one
// transaction. The status flip is guarded on the current status, so a second
// cancel affects zero rows and the rooms are released exactly once.
func (r *BookingRepository) Cancel(ctx context.Context, id int64) (*domain.Booking, error) {
	var out *domain.Booking

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m bookingModel
		if err := tx.First(&m, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}

		now := time.Now().UTC()
		res := tx.Model(&bookingModel{}).
			Where("id = ? AND status = ?", id, string(domain.BookingConfirmed)).
			Updates(map[string]any{
				"status":      string(domain.BookingCanceled),
				"canceled_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrAlreadyCanceled
		}

		if m.HotelID != nil {
			if err := releaseRooms(tx, *m.HotelID, m.Guests); err != nil {
				return err
			}
		}

		m.Status = string(domain.BookingCanceled)
		m.CanceledAt = &now
		out = toDomainBooking(m)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toDomainBooking(m), nil
}

// ListByUser returns the user's bookings newest-first, optionally narrowed to
// one product type.
func (r *BookingRepository) ListByUser(ctx context.Context, userID int64, productType *domain.ProductType) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")

	if productType != nil {
		switch *productType {
		case domain.ProductHotel:
			q = q.Where("hotel_id IS NOT NULL")
		case domain.ProductTour:
			q = q.Where("tour_id IS NOT NULL")
		case domain.ProductExcursion:
			q = q.Where("excursion_id IS NOT NULL")
		}
	}

	var ms []bookingModel
	if err := q.Find(&ms).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}
