package main

import (
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hritik2004-cse/portfolio-backend/api"
	"github.com/hritik2004-cse/portfolio-backend/config"
	"github.com/hritik2004-cse/portfolio-backend/database"
	"github.com/hritik2004-cse/portfolio-backend/models"
	"github.com/hritik2004-cse/portfolio-backend/services"
)

func main() {
	log.Info().Msg("Initializing app...")

	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("no .env file loaded")
	}

	cfg := config.New()

	gormLogger := logger.New(
		stdlog.New(os.Stdout, "\r\n", stdlog.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  connectionString(cfg),
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to database")
	}

	if err := db.AutoMigrate(
		&models.Content{},
		&models.SocialLink{},
		&models.ContactInfo{},
		&models.QuickLink{},
		&models.Technology{},
	); err != nil {
		log.Fatal().Err(err).Msg("migrating database schema")
	}

	currentDB := database.New(db)
	mediaStore := services.NewCloudinary(cfg)

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentDB, mediaStore)
	if err != nil {
		log.Fatal().Err(err).Msg("initializing server")
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Err(fatalErr).Msg("Closing server")

	server.ShutdownGracefully(30 * time.Second)
}

// connectionString prefers DATABASE_URL and falls back to the discrete DB_*
// variables.
func connectionString(cfg map[string]string) string {
	if url := cfg["DATABASE_URL"]; url != "" {
		return url
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		config.GetString(cfg, "DB_HOST", "localhost"),
		config.GetString(cfg, "DB_USER", "postgres"),
		cfg["DB_PASSWORD"],
		config.GetString(cfg, "DB_NAME", "portfolio"),
		config.GetString(cfg, "DB_PORT", "5432"),
	)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
