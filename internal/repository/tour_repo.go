package repository

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"tourista/internal/domain"
)

type TourRepository struct {
	db *gorm.DB
}

func NewTourRepository(db *gorm.DB) *TourRepository {
	return &TourRepository{db: db}
}

type tourModel struct {
	ID           int64           `gorm:"column:id;primaryKey"`
	Title        string          `gorm:"column:title;size:255"`
	Description  *string         `gorm:"column:description;type:text"`
	Destination  string          `gorm:"column:destination;size:255"`
	DurationDays int             `gorm:"column:duration_days"`
	StartDate    *time.Time      `gorm:"column:start_date"`
	EndDate      *time.Time      `gorm:"column:end_date"`
	Price        decimal.Decimal `gorm:"column:price;type:numeric(10,2)"`
	TourType     string          `gorm:"column:tour_type;size:20"`
	Capacity     int             `gorm:"column:capacity"`
	HotelID      *int64          `gorm:"column:hotel_id"`
	Active       bool            `gorm:"column:active"`
	CreatedAt    time.Time       `gorm:"column:created_at"`
	UpdatedAt    time.Time       `gorm:"column:updated_at"`
}

func (tourModel) TableName() string { return "tours" }

func toDomainTour(m tourModel) *domain.Tour {
	var desc string
	if m.Description != nil {
		desc = *m.Description
	}

	return &domain.Tour{
		ID:           m.ID,
		Title:        m.Title,
		Description:  desc,
		Destination:  m.Destination,
		DurationDays: m.DurationDays,
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
		Price:        m.Price,
		TourType:     domain.TourType(m.TourType),
		Capacity:     m.Capacity,
		HotelID:      m.HotelID,
		Active:       m.Active,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toTourModel(t *domain.Tour) tourModel {
	var desc *string
	if t.Description != "" {
		v := t.Description
		desc = &v
	}

	return tourModel{
		ID:           t.ID,
		Title:        t.Title,
		Description:  desc,
		Destination:  t.Destination,
		DurationDays: t.DurationDays,
		StartDate:    t.StartDate,
		EndDate:      t.EndDate,
		Price:        t.Price,
		TourType:     string(t.TourType),
		Capacity:     t.Capacity,
		HotelID:      t.HotelID,
		Active:       t.Active,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func (r *TourRepository) Create(ctx context.Context, t *domain.Tour) error {
	m := toTourModel(t)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*t = *toDomainTour(m)
	return nil
}

func (r *TourRepository) GetByID(ctx context.Context, id int64) (*domain.Tour, error) {
	var m tourModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toDomainTour(m), nil
}

// List returns tours newest-first, optionally filtered by tour type.
func (r *TourRepository) List(ctx context.Context, tourType *domain.TourType) ([]domain.Tour, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if tourType != nil {
		q = q.Where("tour_type = ?", string(*tourType))
	}

	var ms []tourModel
	if err := q.Find(&ms).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Tour, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainTour(m))
	}
	return out, nil
}
