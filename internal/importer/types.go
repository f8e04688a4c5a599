// Package importer loads the startup dataset into the database.
package importer

import (
	"github.com/andes-mining/capex-backend/internal/models"
)

// ParsedDataset contains all resources parsed from a dataset document,
// validated and ready to be created in the database.
type ParsedDataset struct {
	Proyectos []models.Proyecto
	Registros []models.Registro
}
