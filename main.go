package main

import (
	"log"
	"time"

	"github.com/N0Nameez/carcatalog/config"
	"github.com/N0Nameez/carcatalog/internal/handler"
	"github.com/N0Nameez/carcatalog/internal/middleware"
	"github.com/N0Nameez/carcatalog/internal/repository"
	"github.com/N0Nameez/carcatalog/internal/service"
	"github.com/N0Nameez/carcatalog/pkg/database"
	"github.com/N0Nameez/carcatalog/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// Reservation lifecycle events; optional, local dev runs without a broker
	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		var err error
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	carRepo := repository.NewCarRepository(db)
	reservationRepo := repository.NewReservationRepository(db)

	// Services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret, time.Duration(cfg.JWTExpireHours)*time.Hour)
	carSvc := service.NewCarService(carRepo)
	reservationSvc := service.NewReservationService(reservationRepo, carRepo, publisher)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())
	e.Use(echoMw.CORS())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "carcatalog"})
	})

	handler.NewAuthHandler(authSvc).RegisterRoutes(e, cfg.JWTSecret)
	handler.NewCarHandler(carSvc).RegisterRoutes(e, cfg.JWTSecret)
	handler.NewReservationHandler(reservationSvc).RegisterRoutes(e, cfg.JWTSecret)

	log.Printf("Car Catalog API starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
