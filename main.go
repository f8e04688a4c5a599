package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/andes-mining/capex-backend/internal/dataset"
	"github.com/andes-mining/capex-backend/internal/importer"
	"github.com/andes-mining/capex-backend/internal/importer/parser/capexjson"
	"github.com/andes-mining/capex-backend/internal/models"
	"github.com/andes-mining/capex-backend/internal/router"
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

	// Create data directory
	dataDir := filepath.Join(".", "data")
	err := os.MkdirAll(dataDir, os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Connect to the database
	err = models.Connect(filepath.Join(dataDir, "capex.db"))
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Load the dataset. A dataset that cannot be read or parsed is
	// fatal to the session, the dashboard must never show partial data.
	datasetFile, ok := os.LookupEnv("DATASET_FILE")
	if !ok {
		datasetFile = filepath.Join(dataDir, "dataset.json")
	}

	snapshot, err := loadDataset(datasetFile)
	if err != nil {
		log.Fatal().Str("file", datasetFile).Msg(err.Error())
	}

	dataset.Activate(snapshot)
	log.Info().
		Str("snapshot", snapshot.ID.String()).
		Int("proyectos", len(snapshot.Proyectos)).
		Int("registros", len(snapshot.Registros)).
		Msg("dataset loaded")

	r, err := router.Router()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}

// loadDataset parses the dataset document, writes it to the database
// and builds the session snapshot from it.
func loadDataset(file string) (*dataset.Snapshot, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	parsed, err := capexjson.Parse(f)
	if err != nil {
		return nil, err
	}

	if err := importer.Create(models.DB, parsed); err != nil {
		return nil, err
	}

	return dataset.Load(models.DB)
}
