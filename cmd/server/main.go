package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/AGASocial/bottcierge/internal/config"
	"github.com/AGASocial/bottcierge/internal/events"
	"github.com/AGASocial/bottcierge/internal/httpserver"
	"github.com/AGASocial/bottcierge/internal/logging"
	"github.com/AGASocial/bottcierge/internal/repo"
	"github.com/AGASocial/bottcierge/internal/search"
	"github.com/AGASocial/bottcierge/internal/service"
	"github.com/AGASocial/bottcierge/internal/store"
	"github.com/AGASocial/bottcierge/internal/ws"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	db, err := store.Open(configuration.DATABASE_URL)
	if err != nil {
		log.Fatalf("database init error: %v", err)
	}
	if err := store.Seed(db); err != nil {
		log.Fatalf("seed error: %v", err)
	}

	var producer *events.Producer
	if configuration.KAFKA_ADDRESS != "" {
		producer = events.NewProducer(strings.Split(configuration.KAFKA_ADDRESS, ","))
	}

	var esClient *search.Client
	if configuration.ES_URL != "" {
		esClient, err = search.NewClient(configuration)
		if err != nil {
			log.Fatalf("elasticsearch init error: %v", err)
		}
	}

	repos := repo.NewStore(db)
	hub := ws.NewHub(logger, repos.Orders)

	tokenSvc := &service.TokenService{
		Tokens:        repos.Tokens,
		JWTSecret:     []byte(configuration.JWT_SECRET),
		RefreshSecret: []byte(configuration.REFRESH_SECRET),
	}
	orderSvc := &service.OrderService{
		Orders:   repos.Orders,
		Tables:   repos.Tables,
		Products: repos.Products,
		Producer: producer,
		Notifier: hub,
	}
	paymentSvc := &service.PaymentService{
		Payments: repos.Payments,
		Orders:   repos.Orders,
		Tables:   repos.Tables,
		Venues:   repos.Venues,
		OrderSvc: orderSvc,
		Gateway:  service.MockGateway{},
	}

	deps := httpserver.Deps{
		AuthHandler: &httpserver.AuthHandler{
			Auth:   &service.AuthService{Users: repos.Users, Tokens: tokenSvc, Producer: producer},
			Tokens: tokenSvc,
		},
		MenuHandler: &httpserver.MenuHandler{
			Svc:    &service.MenuService{Products: repos.Products, Categories: repos.Categories, Search: esClient},
			Search: esClient,
		},
		OrderHandler:          &httpserver.OrderHandler{Svc: orderSvc},
		TableHandler:          &httpserver.TableHandler{Svc: &service.TableService{Tables: repos.Tables, Producer: producer}},
		StaffHandler:          &httpserver.StaffHandler{Svc: &service.StaffService{Staff: repos.Staff}},
		VenueHandler:          &httpserver.VenueHandler{Svc: &service.VenueService{Venues: repos.Venues}},
		PaymentHandler:        &httpserver.PaymentHandler{Svc: paymentSvc},
		ServiceRequestHandler: &httpserver.ServiceRequestHandler{Svc: &service.ServiceRequestService{Requests: repos.ServiceRequests, Tables: repos.Tables}},
		Hub:                   hub,
	}

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), middleware.CORS())
	e.Use(logging.RequestLogger(logger))

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         ":" + configuration.PORT,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", configuration.PORT)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if err := producer.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	log.Println("shutdown complete")
}
