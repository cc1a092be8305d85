package repository

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"tourista/internal/domain"
)

type ExcursionRepository struct {
	db *gorm.DB
}

func NewExcursionRepository(db *gorm.DB) *ExcursionRepository {
	return &ExcursionRepository{db: db}
}

type excursionModel struct {
	ID            int64           `gorm:"column:id;primaryKey"`
	Title         string          `gorm:"column:title;size:255"`
	Location      string          `gorm:"column:location;size:255"`
	DurationHours int             `gorm:"column:duration_hours"`
	Price         decimal.Decimal `gorm:"column:price;type:numeric(10,2)"`
	Description   *string         `gorm:"column:description;type:text"`
	IsAvailable   bool            `gorm:"column:is_available"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
	UpdatedAt     time.Time       `gorm:"column:updated_at"`
}

func (excursionModel) TableName() string { return "excursions" }

func toDomainExcursion(m excursionModel) *domain.Excursion {
	var desc string
	if m.Description != nil {
		desc = *m.Description
	}

	return &domain.Excursion{
		ID:            m.ID,
		Title:         m.Title,
		Location:      m.Location,
		DurationHours: m.DurationHours,
		Price:         m.Price,
		Description:   desc,
		IsAvailable:   m.IsAvailable,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toExcursionModel(e *domain.Excursion) excursionModel {
	var desc *string
	if e.Description != "" {
		v := e.Description
		desc = &v
	}

	return excursionModel{
		ID:            e.ID,
		Title:         e.Title,
		Location:      e.Location,
		DurationHours: e.DurationHours,
		Price:         e.Price,
		Description:   desc,
		IsAvailable:   e.IsAvailable,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func (r *ExcursionRepository) Create(ctx context.Context, e *domain.Excursion) error {
	m := toExcursionModel(e)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*e = *toDomainExcursion(m)
	return nil
}

func (r *ExcursionRepository) GetByID(ctx context.Context, id int64) (*domain.Excursion, error) {
	var m excursionModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toDomainExcursion(m), nil
}

func (r *ExcursionRepository) List(ctx context.Context, onlyAvailable bool) ([]domain.Excursion, error) {
	q := r.db.WithContext(ctx).Order("title ASC")
	if onlyAvailable {
		q = q.Where("is_available = ?", true)
	}

	var ms []excursionModel
	if err := q.Find(&ms).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Excursion, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainExcursion(m))
	}
	return out, nil
}
