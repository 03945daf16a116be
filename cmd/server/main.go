package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Optional .env loading for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/sheshnag/movie-booking/internal/booking"
	"github.com/sheshnag/movie-booking/internal/catalog"
	"github.com/sheshnag/movie-booking/internal/config"
	"github.com/sheshnag/movie-booking/internal/handler"
	"github.com/sheshnag/movie-booking/internal/middleware"
	"github.com/sheshnag/movie-booking/internal/notify"
	"github.com/sheshnag/movie-booking/internal/queue"
	"github.com/sheshnag/movie-booking/internal/router"
	queue_publisher "github.com/sheshnag/movie-booking/internal/service"
	"github.com/sheshnag/movie-booking/internal/store"
)

func main() {
	_ = godotenv.Load() // load .env when present; real env vars win
	cfg := config.Load()

	// Redis backs the catalog response cache and, optionally, the
	// booking store.  A nil client disables both gracefully.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; response caching disabled")
	}

	var st store.Store
	switch cfg.StoreBackend {
	case "redis":
		st = store.NewRedisStore(rdb, cfg.StoreRedisKey)
	default:
		st = store.NewFileStore(cfg.StoreFilePath)
	}
	defer func() { _ = st.Close() }()

	dispatcher := notify.New(cfg.AdminWebhookURL, cfg.EmailWebhookURL, cfg.AdminContact, cfg.WebhookTimeout)

	var publish booking.PublishFunc
	if cfg.QueueEnabled {
		publish = queue_publisher.PublishBookingCreated
		// The consumer appends booking events to logs/booking.log and
		// reconnects on broker failures for the lifetime of the process.
		go func() {
			if err := queue.StartBookingConsumer(); err != nil {
				log.Printf("booking consumer stopped: %v", err)
			}
		}()
	}

	svc := booking.New(st, dispatcher, publish)
	cat := catalog.New(cfg.TMDBBaseURL, cfg.TMDBAPIKey, cfg.CatalogTimeout)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterCatalog(e, handler.NewCatalogHandler(cat), middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	router.RegisterBooking(e, handler.NewBookingHandler(svc), &handler.SeatMapHandler{})
	router.RegisterAdmin(e, handler.NewAdminHandler(svc))

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
