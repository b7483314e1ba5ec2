package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/umuryango/backend/internal/backup"
	"github.com/umuryango/backend/internal/budget"
	"github.com/umuryango/backend/internal/clock"
	v1 "github.com/umuryango/backend/internal/controllers/v1"
	"github.com/umuryango/backend/internal/router"
	"github.com/umuryango/backend/internal/storage"
)

func main() {
	// A .env file is optional, variables from the environment win.
	_ = godotenv.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	dbPath, ok := os.LookupEnv("DB_PATH")
	if !ok {
		dbPath = filepath.Join("data", "umuryango.db")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), os.ModePerm); err != nil {
		log.Fatal().Msg(err.Error())
	}

	store, err := storage.Connect(dbPath)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	service := budget.NewService(store, clock.System{})

	// Close the gap between month records and the history index that
	// data from older versions can have.
	if err := service.Reconcile(); err != nil {
		log.Fatal().Msg(err.Error())
	}

	backupDir, ok := os.LookupEnv("BACKUP_DIR")
	if !ok {
		backupDir = filepath.Join("data", "backups")
	}

	backups, err := backup.New(backupDir)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, err := router.Config()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(v1.Controller{
		Service: service,
		Store:   store,
		Backups: backups,
	}, r.Group(""))

	log.Info().Msg("backend startup complete")

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
