package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"tourista/internal/config"
	"tourista/internal/database"
	"tourista/internal/middleware"
	"tourista/internal/modules/booking"
	"tourista/internal/modules/catalog"
	"tourista/internal/notification"
	jwtsvc "tourista/internal/pkg/jwt"
	"tourista/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	hotelRepo := repository.NewHotelRepository(db)
	tourRepo := repository.NewTourRepository(db)
	excursionRepo := repository.NewExcursionRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)

	notifier, err := notification.NewTelegramNotifier(cfg.TelegramBotToken, cfg.TelegramChatID)
	if err != nil {
		log.Fatal(err)
	}

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	catalogService := catalog.NewService(hotelRepo, tourRepo, excursionRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, catalogRepo, notifier)
	bookingHandler := booking.NewHandler(bookingService)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.CORS(), middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		catalogHandler.RegisterRoutes(v1)

		// protected
		protected := v1.Group("")
		protected.Use(middleware.JWTAuth(j))
		{
			bookingHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
