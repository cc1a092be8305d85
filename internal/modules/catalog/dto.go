package catalog

import (
	"time"

	"tourista/internal/domain"
)

type HotelResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Location       string `json:"location"`
	Rating         string `json:"rating"`
	Description    string `json:"description,omitempty"`
	PricePerNight  string `json:"price_per_night"`
	AvailableRooms int    `json:"available_rooms"`
	IsAvailable    bool   `json:"is_available"`
	HasWifi        bool   `json:"has_wifi"`
	HasPool        bool   `json:"has_pool"`
	HasBreakfast   bool   `json:"has_breakfast"`
	HasParking     bool   `json:"has_parking"`
}

type TourResponse struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	Destination  string     `json:"destination"`
	DurationDays int        `json:"duration_days"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	Price        string     `json:"price"`
	TourType     string     `json:"tour_type"`
	Capacity     int        `json:"capacity"`
	HotelID      *int64     `json:"hotel_id,omitempty"`
	Active       bool       `json:"active"`
}

type ExcursionResponse struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Location      string `json:"location"`
	DurationHours int    `json:"duration_hours"`
	Price         string `json:"price"`
	Description   string `json:"description,omitempty"`
	IsAvailable   bool   `json:"is_available"`
}

func toHotelResponse(h *domain.Hotel) HotelResponse {
	return HotelResponse{
		ID:             h.ID,
		Name:           h.Name,
		Location:       h.Location,
		Rating:         h.Rating.StringFixed(1),
		Description:    h.Description,
		PricePerNight:  h.PricePerNight.StringFixed(2),
		AvailableRooms: h.AvailableRooms,
		IsAvailable:    h.IsAvailable,
		HasWifi:        h.HasWifi,
		HasPool:        h.HasPool,
		HasBreakfast:   h.HasBreakfast,
		HasParking:     h.HasParking,
	}
}

func toTourResponse(t *domain.Tour) TourResponse {
	return TourResponse{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		Destination:  t.Destination,
		DurationDays: t.DurationDays,
		StartDate:    t.StartDate,
		EndDate:      t.EndDate,
		Price:        t.Price.StringFixed(2),
		TourType:     string(t.TourType),
		Capacity:     t.Capacity,
		HotelID:      t.HotelID,
		Active:       t.Active,
	}
}

func toExcursionResponse(e *domain.Excursion) ExcursionResponse {
	return ExcursionResponse{
		ID:            e.ID,
		Title:         e.Title,
		Location:      e.Location,
		DurationHours: e.DurationHours,
		Price:         e.Price.StringFixed(2),
		Description:   e.Description,
		IsAvailable:   e.IsAvailable,
	}
}
