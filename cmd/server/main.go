package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"venue-booking/internal/catalog"
	"venue-booking/internal/config"
	"venue-booking/internal/database"
	"venue-booking/internal/handler"
	"venue-booking/internal/queue"
	"venue-booking/internal/repository"
	"venue-booking/internal/router"
	"venue-booking/internal/seed"
	"venue-booking/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env wins
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	venueRepo := repository.NewVenueRepo(db)
	userRepo := repository.NewUserRepo(db)
	seatRepo := repository.NewSeatRepo(db)
	bookingRepo := repository.NewBookingRepo(db)

	if cfg.SeedData {
		seeder := &seed.Seeder{
			Venues:   venueRepo,
			Users:    userRepo,
			Seats:    seatRepo,
			Bookings: bookingRepo,
			Cost:     cfg.BcryptCost,
		}
		if err := seeder.Run(context.Background()); err != nil {
			log.Fatalf("seed: %v", err)
		}
	}

	// Redis is optional; a nil client just disables the catalog cache.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, show name cache disabled")
	}
	shows := catalog.New(cfg.ShowAPIURL, rdb)

	var events service.EventPublisher
	if cfg.RabbitURL != "" {
		events = queue.NewPublisher(cfg.RabbitURL)
		go queue.StartConsumer(cfg.RabbitURL)
	} else {
		log.Println("RABBITMQ_URL not set, booking events disabled")
	}

	seatSvc := service.NewSeatService(seatRepo)
	venueSvc := service.NewVenueService(venueRepo, seatSvc)
	userSvc := service.NewUserService(userRepo, cfg.BcryptCost)
	mapper := service.NewMappingService(userRepo, seatRepo, shows)
	bookingSvc := service.NewBookingService(bookingRepo, venueSvc, seatSvc, mapper, events)

	e := echo.New()
	router.Register(e,
		handler.NewAuthHandler(cfg, userSvc),
		handler.NewUserHandler(userSvc, bookingSvc),
		handler.NewBookingHandler(bookingSvc),
		handler.NewSeatHandler(seatSvc, venueSvc),
		cfg.JWTSecret,
	)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
