package main

import (
	"net/http"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"hotelsearch/internal/adapters/geocode"
	server "hotelsearch/internal/adapters/http_server"
	"hotelsearch/internal/adapters/observability"
	redisad "hotelsearch/internal/adapters/redis"
	"hotelsearch/internal/adapters/searchapi"
	"hotelsearch/internal/app"
	"hotelsearch/internal/domain"
	"hotelsearch/internal/shared"
	"hotelsearch/internal/storage/memory"
)

func main() {
	_ = godotenv.Load()
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// deps
	catalog := memory.New()

	var upstream domain.UpstreamSearcher
	if cfg.SearchAPIKey != "" {
		client, err := searchapi.New(cfg.SearchAPIBase, cfg.SearchAPIKey, cfg.SearchAPIRPS)
		if err != nil {
			log.Fatal().Err(err).Msg("searchapi client init failed")
		}
		upstream = client
	}

	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	geo, err := geocode.NewMemo(geocode.NewClient(cfg.NominatimBase), cfg.GeocodeCacheSize)
	if err != nil {
		log.Fatal().Err(err).Msg("geocode memo init failed")
	}

	search := app.NewSearchService(catalog, upstream, cfg.UseMockHotels)
	detail := app.NewDetailService(catalog, upstream, cache, cfg.CacheTTL)
	log.Info().Str("mode", search.Mode().String()).Msg("hotel search gateway ready")

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Search: search, Detail: detail, Geo: geo})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
