package api

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/hritik2004-cse/portfolio-backend/config"
	"github.com/hritik2004-cse/portfolio-backend/database"
	"github.com/hritik2004-cse/portfolio-backend/services"
	"github.com/rs/zerolog/log"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(database database.Database, mediaStore services.MediaStore) (Server, error) {
	c := config.New()

	// Ensure correct port is set
	port := config.GetString(c, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port) // Bind to 0.0.0.0 for external access

	// Capture startup time
	startupTime := time.Now()

	router := newRouter(database, mediaStore, withConfig(c), withStartupTime(startupTime))

	// Get timeout values from config with sensible defaults
	readTimeout := time.Duration(config.GetInt(c, "READ_TIMEOUT_SECONDS", 180)) * time.Second
	writeTimeout := time.Duration(config.GetInt(c, "WRITE_TIMEOUT_SECONDS", 180)) * time.Second
	idleTimeout := time.Duration(config.GetInt(c, "IDLE_TIMEOUT_SECONDS", 180)) * time.Second

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return Server{server, startupTime}, nil
}

type router struct {
	config      map[string]string
	startupTime time.Time
}

func withConfig(c map[string]string) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func newRouter(database database.Database, mediaStore services.MediaStore, opts ...func(*router)) *chi.Mux {
	var router router
	for _, opt := range opts {
		opt(&router)
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)
	chiRouter.Use(cors.Handler(corsOptions(router.config)))

	// Initialize all handlers
	handlers := initializeHandlers(database, mediaStore, router.startupTime)

	setupRoutes(chiRouter, handlers)

	return chiRouter
}

// corsOptions accepts the configured origin allow-list plus any origin
// matching the deployment-preview domain pattern. Credentials are allowed, so
// a wildcard origin is never used.
func corsOptions(cfg map[string]string) cors.Options {
	acceptedOrigins := strings.Split(config.GetString(cfg, "ACCEPTED_ORIGINS",
		"http://localhost:5173,http://localhost:5174,http://127.0.0.1:5173,http://127.0.0.1:5174"), ",")
	for i := range acceptedOrigins {
		acceptedOrigins[i] = strings.TrimSpace(acceptedOrigins[i])
	}

	var previewPattern *regexp.Regexp
	if pattern := config.GetString(cfg, "PREVIEW_ORIGIN_PATTERN", ""); pattern != "" {
		re, err := regexp.Compile(pattern)
		if err != nil {
			log.Warn().Err(err).Str("pattern", pattern).Msg("Invalid PREVIEW_ORIGIN_PATTERN, ignoring")
		} else {
			previewPattern = re
		}
	}

	return cors.Options{
		AllowOriginFunc: func(r *http.Request, origin string) bool {
			for _, allowed := range acceptedOrigins {
				if allowed != "" && allowed == origin {
					return true
				}
			}
			return previewPattern != nil && previewPattern.MatchString(origin)
		},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
