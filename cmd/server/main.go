package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/prasannakumar-sl/crackers-shop/internal/config"
	"github.com/prasannakumar-sl/crackers-shop/internal/db"
	"github.com/prasannakumar-sl/crackers-shop/internal/es"
	"github.com/prasannakumar-sl/crackers-shop/internal/events"
	"github.com/prasannakumar-sl/crackers-shop/internal/httpserver"
	"github.com/prasannakumar-sl/crackers-shop/internal/logging"
	loggingmw "github.com/prasannakumar-sl/crackers-shop/internal/middleware/logging"
	"github.com/prasannakumar-sl/crackers-shop/internal/render"
	"github.com/prasannakumar-sl/crackers-shop/internal/repo"
	"github.com/prasannakumar-sl/crackers-shop/internal/search"
	"github.com/prasannakumar-sl/crackers-shop/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	config.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")

	logger := logging.New(os.Getenv("LOG_LEVEL")).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	database, err := db.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	if err := repo.AutoMigrate(database); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	var searchIndex *search.Index
	if cfg.ESURL != "" {
		esClient, err := es.NewClient(cfg)
		if err != nil {
			logger.Warn("elasticsearch unavailable, falling back to SQL search", "error", err)
		} else {
			searchIndex = search.NewIndex(esClient, cfg.ESIndex)
		}
	}

	var producer events.Producer = events.NoopProducer{}
	if len(cfg.KafkaBrokers) > 0 {
		kp := events.NewKafkaProducer(cfg.KafkaBrokers)
		defer kp.Close()
		producer = kp
	}

	r := &repo.GormRepo{DB: database}

	authSvc := &service.AuthService{Repo: r, JWTSecret: cfg.JWTSecret}
	if err := authSvc.EnsureAdmin(context.Background(), os.Getenv("ADMIN_USERNAME"), os.Getenv("ADMIN_PASSWORD")); err != nil {
		log.Fatalf("bootstrap admin: %v", err)
	}

	catalogSvc := &service.CatalogService{Repo: r, Search: searchIndex, Producer: producer}
	orderSvc := &service.OrderService{Repo: r, Producer: producer, Fees: cfg.Fees}
	invoiceSvc := &service.InvoiceService{Repo: r}
	sectionSvc := &service.SectionService{Repo: r}
	carouselSvc := &service.CarouselService{Repo: r}
	companySvc := &service.CompanyService{Repo: r}
	pageSvc := &service.PageService{Repo: r}

	e := echo.New()
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, &httpserver.Deps{
		CatalogHandler:  &httpserver.CatalogHTTP{Svc: catalogSvc},
		OrderHandler:    &httpserver.OrderHTTP{Svc: orderSvc},
		InvoiceHandler:  &httpserver.InvoiceHTTP{Svc: invoiceSvc, Exporter: render.NewExporter()},
		SectionHandler:  &httpserver.SectionHTTP{Svc: sectionSvc},
		CarouselHandler: &httpserver.CarouselHTTP{Svc: carouselSvc},
		CompanyHandler:  &httpserver.CompanyHTTP{Svc: companySvc},
		PageHandler:     &httpserver.PageHTTP{Svc: pageSvc},
		HomeHandler:     &httpserver.HomeHTTP{Sections: sectionSvc, Carousel: carouselSvc, Company: companySvc},
		AuthHandler:     &httpserver.AuthHTTP{Svc: authSvc},
		JWTSecret:       cfg.JWTSecret,
	})

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("%s listening on %s", cfg.ServiceName, srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)

	if sqlDB, err := database.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Printf("%s stopped", cfg.ServiceName)
}
