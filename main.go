package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/buckwheat-app/backend/internal/config"
	v1 "github.com/buckwheat-app/backend/internal/controllers/v1"
	"github.com/buckwheat-app/backend/internal/engine"
	"github.com/buckwheat-app/backend/internal/models"
	"github.com/buckwheat-app/backend/internal/router"
	"github.com/buckwheat-app/backend/internal/storage"
	"github.com/buckwheat-app/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
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

	cfg, err := config.New()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Create the data directory
	err = os.MkdirAll(filepath.Dir(cfg.Database().Path()), os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Connect to the database
	err = models.Connect(cfg.Database().Path())
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Restore the engine from the persisted snapshot
	store := storage.New()
	defer store.Close()

	budgetEngine := engine.New(store)

	snapshot, err := store.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	if snapshot != nil {
		budgetEngine.Restore(*snapshot)
	}

	// Catch up on days that passed while the backend was down
	budgetEngine.CheckDayRollover(types.Today())

	r, err := router.Config(cfg.Server())
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	co := v1.NewController(budgetEngine, cfg.App().Locale())
	router.AttachRoutes(co, r.Group("/"))

	if err := r.Run(cfg.Server().Address()); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
