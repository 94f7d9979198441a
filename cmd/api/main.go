package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"search-system/internal/config"
	httphandler "search-system/internal/http"
	"search-system/internal/metrics"
	"search-system/internal/services/events"
	"search-system/internal/services/llm"
	"search-system/internal/services/places"
	"search-system/internal/services/search"
	"search-system/internal/upstream"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	var port = flag.String("port", "", "Port to run the server on (overrides PORT)")
	flag.Parse()

	// Credentials come from the environment; a .env file is a convenience
	// for local runs.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("Could not load .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	if *port == "" {
		*port = cfg.Server.Port
	}

	metrics.Register()

	llmClient, err := llm.NewOpenAIClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.Search.UpstreamTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create LLM client")
	}

	eventsAPI := upstream.NewPredictHQClient(cfg.PredictHQ.BaseURL, cfg.PredictHQ.Token, cfg.Search.UpstreamTimeout)
	placesAPI := upstream.NewGooglePlacesClient(cfg.Google.PlacesBaseURL, cfg.Google.PlacesAPIKey, cfg.Search.UpstreamTimeout)
	geocoder := upstream.NewGeocodingClient(cfg.Google.GeocodingBaseURL, cfg.Google.GeocodingAPIKey, cfg.Search.UpstreamTimeout)

	eventService := events.NewService(eventsAPI, geocoder, llmClient)
	placeService := places.NewService(placesAPI, geocoder, llmClient, cfg.Search.FanOutWorkers)
	searchService := search.NewService(llmClient, eventService, placeService, cfg.Search)

	router := httphandler.NewRouter()
	router.RegisterSearchRoutes(httphandler.NewSearchHandler(searchService))
	router.RegisterHealthRoutes()
	router.RegisterMetricsRoutes()

	server := &http.Server{
		Addr:         ":" + *port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info().Str("port", *port).Msg("Starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	}

	log.Info().Msg("Server stopped")
}
