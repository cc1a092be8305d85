package repository

import (
	"context"

	"gorm.io/gorm"

	"tourista/internal/domain"
)

// CatalogRepository is the read-only product lookup consumed by the booking
// core. Snapshots are fetched fresh per operation; hotel capacity changes
// under concurrent bookings, so nothing here is cached.
type CatalogRepository struct {
	hotels     *HotelRepository
	tours      *TourRepository
	excursions *ExcursionRepository
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{
		hotels:     NewHotelRepository(db),
		tours:      NewTourRepository(db),
		excursions: NewExcursionRepository(db),
	}
}

func (r *CatalogRepository) GetHotel(ctx context.Context, id int64) (*domain.Hotel, error) {
	return r.hotels.GetByID(ctx, id)
}

func (r *CatalogRepository) GetTour(ctx context.Context, id int64) (*domain.Tour, error) {
	return r.tours.GetByID(ctx, id)
}

func (r *CatalogRepository) GetExcursion(ctx context.Context, id int64) (*domain.Excursion, error) {
	return r.excursions.GetByID(ctx, id)
}
