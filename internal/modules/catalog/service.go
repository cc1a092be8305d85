package catalog

import (
	"context"
	"errors"

	"tourista/internal/domain"
)

var ErrInvalidTourType = errors.New("invalid tour type")

// HotelStore, TourStore and ExcursionStore are the catalog read paths backed
// by the repository package.
type HotelStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
	List(ctx context.Context, onlyAvailable bool) ([]domain.Hotel, error)
}

type TourStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Tour, error)
	List(ctx context.Context, tourType *domain.TourType) ([]domain.Tour, error)
}

type ExcursionStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Excursion, error)
	List(ctx context.Context, onlyAvailable bool) ([]domain.Excursion, error)
}

type Service struct {
	hotels     HotelStore
	tours      TourStore
	excursions ExcursionStore
}

func NewService(hotels HotelStore, tours TourStore, excursions ExcursionStore) *Service {
	return &Service{hotels: hotels, tours: tours, excursions: excursions}
}

func (s *Service) ListHotels(ctx context.Context, onlyAvailable bool) ([]domain.Hotel, error) {
	return s.hotels.List(ctx, onlyAvailable)
}

func (s *Service) GetHotel(ctx context.Context, id int64) (*domain.Hotel, error) {
	return s.hotels.GetByID(ctx, id)
}

func (s *Service) ListTours(ctx context.Context, rawType string) ([]domain.Tour, error) {
	var tourType *domain.TourType
	if rawType != "" {
		t := domain.TourType(rawType)
		switch t {
		case domain.TourAdventure, domain.TourCultural, domain.TourLeisure, domain.TourOther:
			tourType = &t
		default:
			return nil, ErrInvalidTourType
		}
	}
	return s.tours.List(ctx, tourType)
}

func (s *Service) GetTour(ctx context.Context, id int64) (*domain.Tour, error) {
	return s.tours.GetByID(ctx, id)
}

func (s *Service) ListExcursions(ctx context.Context, onlyAvailable bool) ([]domain.Excursion, error) {
	return s.excursions.List(ctx, onlyAvailable)
}

func (s *Service) GetExcursion(ctx context.Context, id int64) (*domain.Excursion, error) {
	return s.excursions.GetByID(ctx, id)
}
