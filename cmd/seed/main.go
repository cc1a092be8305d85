package main

import (
	"context"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"tourista/internal/config"
	"tourista/internal/database"
	"tourista/internal/domain"
	"tourista/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM tours")
	db.Exec("DELETE FROM excursions")
	db.Exec("DELETE FROM hotels")

	ctx := context.Background()

	hotelRepo := repository.NewHotelRepository(db)
	tourRepo := repository.NewTourRepository(db)
	excursionRepo := repository.NewExcursionRepository(db)

	log.Println("Creating hotels...")
	hotels := []domain.Hotel{
		{
			Name:           "Registan Plaza",
			Location:       "Samarkand",
			Rating:         decimal.RequireFromString("4.6"),
			Description:    "Four-star hotel a short walk from Registan Square.",
			PricePerNight:  decimal.RequireFromString("120.00"),
			AvailableRooms: 24,
			IsAvailable:    true,
			HasWifi:        true,
			HasPool:        true,
			HasBreakfast:   true,
		},
		{
			Name:           "Silk Road Inn",
			Location:       "Bukhara",
			Rating:         decimal.RequireFromString("4.2"),
			Description:    "Family-run guesthouse in the old town.",
			PricePerNight:  decimal.RequireFromString("55.00"),
			AvailableRooms: 8,
			IsAvailable:    true,
			HasWifi:        true,
			HasBreakfast:   true,
			HasParking:     true,
		},
		{
			Name:           "Chimgan Lodge",
			Location:       "Chimgan Mountains",
			Rating:         decimal.RequireFromString("3.9"),
			PricePerNight:  decimal.RequireFromString("80.00"),
			AvailableRooms: 12,
			IsAvailable:    true,
			HasParking:     true,
		},
	}
	for i := range hotels {
		if err := hotelRepo.Create(ctx, &hotels[i]); err != nil {
			log.Fatal("seed hotel:", err)
		}
	}

	log.Println("Creating tours...")
	start := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 7)
	tours := []domain.Tour{
		{
			Title:        "Silk Road Classic",
			Description:  "Tashkent, Samarkand and Bukhara in one week.",
			Destination:  "Samarkand",
			DurationDays: 7,
			StartDate:    &start,
			EndDate:      &end,
			Price:        decimal.RequireFromString("950.00"),
			TourType:     domain.TourCultural,
			Capacity:     20,
			HotelID:      &hotels[0].ID,
			Active:       true,
		},
		{
			Title:        "Aydarkul Desert Trek",
			Description:  "Camel trek and yurt camp on the lake shore.",
			Destination:  "Aydarkul",
			DurationDays: 3,
			Price:        decimal.RequireFromString("340.00"),
			TourType:     domain.TourAdventure,
			Capacity:     12,
			Active:       true,
		},
	}
	for i := range tours {
		if err := tourRepo.Create(ctx, &tours[i]); err != nil {
			log.Fatal("seed tour:", err)
		}
	}

	log.Println("Creating excursions...")
	excursions := []domain.Excursion{
		{
			Title:         "Registan by Night",
			Location:      "Samarkand",
			DurationHours: 3,
			Price:         decimal.RequireFromString("25.00"),
			Description:   "Evening walk with the square illuminated.",
			IsAvailable:   true,
		},
		{
			Title:         "Chorsu Bazaar Food Tour",
			Location:      "Tashkent",
			DurationHours: 4,
			Price:         decimal.RequireFromString("40.00"),
			IsAvailable:   true,
		},
	}
	for i := range excursions {
		if err := excursionRepo.Create(ctx, &excursions[i]); err != nil {
			log.Fatal("seed excursion:", err)
		}
	}

	log.Printf("Done: %d hotels, %d tours, %d excursions", len(hotels), len(tours), len(excursions))
}
