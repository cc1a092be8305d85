package repository

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"tourista/internal/domain"
)

type HotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

type hotelModel struct {
	ID             int64           `gorm:"column:id;primaryKey"`
	Name           string          `gorm:"column:name;size:255"`
	Location       string          `gorm:"column:location;size:255"`
	Rating         decimal.Decimal `gorm:"column:rating;type:numeric(2,1)"`
	Description    *string         `gorm:"column:description;type:text"`
	PricePerNight  decimal.Decimal `gorm:"column:price_per_night;type:numeric(10,2)"`
	AvailableRooms int             `gorm:"column:available_rooms"`
	IsAvailable    bool            `gorm:"column:is_available"`
	HasWifi        bool            `gorm:"column:has_wifi"`
	HasPool        bool            `gorm:"column:has_pool"`
	HasBreakfast   bool            `gorm:"column:has_breakfast"`
	HasParking     bool            `gorm:"column:has_parking"`
	CreatedAt      time.Time       `gorm:"column:created_at"`
	UpdatedAt      time.Time       `gorm:"column:updated_at"`
}

func (hotelModel) TableName() string { return "hotels" }

func toDomainHotel(m hotelModel) *domain.Hotel {
	var desc string
	if m.Description != nil {
		desc = *m.Description
	}

	return &domain.Hotel{
		ID:             m.ID,
		Name:           m.Name,
		Location:       m.Location,
		Rating:         m.Rating,
		Description:    desc,
		PricePerNight:  m.PricePerNight,
		AvailableRooms: m.AvailableRooms,
		IsAvailable:    m.IsAvailable,
		HasWifi:        m.HasWifi,
		HasPool:        m.HasPool,
		HasBreakfast:   m.HasBreakfast,
		HasParking:     m.HasParking,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toHotelModel(h *domain.Hotel) hotelModel {
	var desc *string
	if h.Description != "" {
		v := h.Description
		desc = &v
	}

	return hotelModel{
		ID:             h.ID,
		Name:           h.Name,
		Location:       h.Location,
		Rating:         h.Rating,
		Description:    desc,
		PricePerNight:  h.PricePerNight,
		AvailableRooms: h.AvailableRooms,
		IsAvailable:    h.IsAvailable,
		HasWifi:        h.HasWifi,
		HasPool:        h.HasPool,
		HasBreakfast:   h.HasBreakfast,
		HasParking:     h.HasParking,
		CreatedAt:      h.CreatedAt,
		UpdatedAt:      h.UpdatedAt,
	}
}

func (r *HotelRepository) Create(ctx context.Context, h *domain.Hotel) error {
	m := toHotelModel(h)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*h = *toDomainHotel(m)
	return nil
}

func (r *HotelRepository) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	var m hotelModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toDomainHotel(m), nil
}

// List returns hotels newest-first. With onlyAvailable set it hides hotels
// flagged inactive by the back office.
func (r *HotelRepository) List(ctx context.Context, onlyAvailable bool) ([]domain.Hotel, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if onlyAvailable {
		q = q.Where("is_available = ?", true)
	}

	var ms []hotelModel
	if err := q.Find(&ms).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Hotel, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainHotel(m))
	}
	return out, nil
}
