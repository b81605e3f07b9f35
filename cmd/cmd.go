package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lend-closet-backend/internal/config"
	"lend-closet-backend/internal/fixtures"
	"lend-closet-backend/internal/handlers"
	"lend-closet-backend/internal/middleware"
	"lend-closet-backend/internal/models"
	"lend-closet-backend/internal/services"
	"lend-closet-backend/internal/store"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func Run() {
	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	setupLogger(cfg.Log.Level)

	// Load fixtures. The stores are rebuilt from these on every start;
	// nothing survives a restart.
	fix, err := fixtures.Load(cfg.Data.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load fixtures")
	}
	log.Info().
		Int("products", len(fix.Products)).
		Int("users", len(fix.Users)).
		Int("activity", len(fix.Activity)).
		Msg("Fixtures loaded")

	viewer := models.Person{Name: cfg.Viewer.Name, AvatarURL: cfg.Viewer.AvatarURL}

	// Initialize stores
	activityStore := store.NewActivityStore(fix.Activity)
	requestStore := store.NewRequestStore()
	listingStore := store.NewListingStore(fix.Profile.Listings)
	userStore := store.NewUserStore(fix.Users)

	// Initialize services
	eventHub := services.NewEventHub()
	catalogService := services.NewCatalogService(fix.Products)
	activityService := services.NewActivityService(activityStore, requestStore, eventHub, viewer.Name)
	requestService := services.NewRequestService(requestStore, catalogService, eventHub, viewer)
	listingService := services.NewListingService(listingStore, activityStore, eventHub, viewer.Name)
	opener := services.NewSchemeOpener(cfg.Contact.Schemes)
	friendService := services.NewFriendService(userStore, opener, eventHub)
	profileService := services.NewProfileService(fix.Profile, userStore, activityStore, listingService)

	// Friend-flag changes reach connected clients through the hub so
	// dependent views recompute their counts
	userStore.Subscribe(func() {
		eventHub.Broadcast(services.EventUsersChanged, "", nil)
	})

	// Initialize handlers
	productHandler := handlers.NewProductHandler(catalogService)
	activityHandler := handlers.NewActivityHandler(activityService)
	requestHandler := handlers.NewRequestHandler(requestService)
	listingHandler := handlers.NewListingHandler(listingService)
	friendHandler := handlers.NewFriendHandler(friendService)
	profileHandler := handlers.NewProfileHandler(profileService)
	wsHandler := handlers.NewWebSocketHandler(eventHub)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(corsMiddleware)
	r.Use(middleware.WithViewer(viewer))

	// Routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", productHandler.ListProducts)
		r.Get("/products/{product_id}", productHandler.GetProduct)

		r.Get("/activity", activityHandler.GetBuckets)
		r.Post("/activity/{item_id}/approve", activityHandler.Approve)
		r.Post("/activity/{item_id}/deny", activityHandler.Deny)
		r.Post("/activity/{item_id}/return", activityHandler.Return)

		r.Get("/requests", requestHandler.ListRequests)
		r.Post("/requests", requestHandler.CreateRequest)
		r.Delete("/requests/{product_id}", requestHandler.CancelRequest)
		r.Post("/requests/{product_id}/approved", requestHandler.MarkApproved)

		r.Get("/listings", listingHandler.ListListings)
		r.Get("/listings/{listing_id}", listingHandler.GetListing)
		r.Post("/listings", listingHandler.AddListing)
		r.Delete("/listings/{listing_id}", listingHandler.DeleteListing)

		r.Get("/friends", friendHandler.ListFriends)
		r.Post("/friends", friendHandler.AddFriend)
		r.Post("/friends/lookup", friendHandler.LookupFriend)
		r.Post("/friends/{user_id}/contact", friendHandler.ContactFriend)

		r.Get("/profile", profileHandler.GetProfile)
	})

	// WebSocket route
	r.Get("/ws", wsHandler.HandleWebSocket)

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("host", cfg.Server.Host).
			Int("port", cfg.Server.Port).
			Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// setupLogger configures zerolog logger
func setupLogger(level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// corsMiddleware handles CORS
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
