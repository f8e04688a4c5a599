// Package dataset holds the immutable per-session view of the loaded
// dataset.
package dataset

import (
	"fmt"
	"sort"
	"time"

	"github.com/andes-mining/capex-backend/internal/models"
	"github.com/google/uuid"
	"golang.org/x/exp/maps"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

// Snapshot is the in-memory dataset all filtering and aggregation runs
// on. It is built once after the import and never mutated; replacing
// the dataset means building a new Snapshot.
type Snapshot struct {
	ID       uuid.UUID
	LoadedAt time.Time

	Proyectos []models.Proyecto
	Registros []models.Registro

	// Lookup resolves a proyecto id to the project. Registros whose id
	// is not in here are orphaned and never part of any result.
	Lookup map[string]models.Proyecto

	// Options are derived from the unfiltered dataset so that filter
	// dropdowns never shrink while other filters are applied.
	Options Options
}

// Options are the selectable values per filter dimension.
type Options struct {
	Anios    []int    `json:"anios"`
	Meses    []int    `json:"meses"`
	Areas    []string `json:"areas"`
	Tipos    []string `json:"tipos"`
	Estados  []string `json:"estados"`
	Regiones []string `json:"regiones"`
}

// Load reads the full dataset from the database and builds the
// session snapshot.
func Load(db *gorm.DB) (*Snapshot, error) {
	var proyectos []models.Proyecto
	if err := db.Find(&proyectos).Error; err != nil {
		return nil, fmt.Errorf("could not load proyectos: %w", err)
	}

	var registros []models.Registro
	if err := db.Order("id ASC").Find(&registros).Error; err != nil {
		return nil, fmt.Errorf("could not load registros: %w", err)
	}

	return New(proyectos, registros), nil
}

// New builds a snapshot from already loaded collections.
func New(proyectos []models.Proyecto, registros []models.Registro) *Snapshot {
	lookup := make(map[string]models.Proyecto, len(proyectos))
	for _, p := range proyectos {
		lookup[p.ID] = p
	}

	return &Snapshot{
		ID:        uuid.New(),
		LoadedAt:  time.Now(),
		Proyectos: proyectos,
		Registros: registros,
		Lookup:    lookup,
		Options:   options(proyectos, registros),
	}
}

func options(proyectos []models.Proyecto, registros []models.Registro) Options {
	anios := make(map[int]bool)
	meses := make(map[int]bool)
	for _, r := range registros {
		anios[r.Anio] = true
		meses[r.Mes] = true
	}

	areas := make(map[string]bool)
	tipos := make(map[string]bool)
	estados := make(map[string]bool)
	regiones := make(map[string]bool)
	for _, p := range proyectos {
		areas[p.Area] = true
		tipos[p.Tipo] = true
		estados[p.EstadoDisplay()] = true
		regiones[p.Region] = true
	}

	return Options{
		Anios:    sortedInts(anios),
		Meses:    sortedInts(meses),
		Areas:    sortedStrings(areas),
		Tipos:    sortedStrings(tipos),
		Estados:  sortedStrings(estados),
		Regiones: sortedStrings(regiones),
	}
}

func sortedInts(set map[int]bool) []int {
	values := maps.Keys(set)
	sort.Ints(values)
	return values
}

// The dataset uses Spanish names, plain byte order would sort
// "Ñuble" after "Zona Sur".
var collator = collate.New(language.Spanish)

func sortedStrings(set map[string]bool) []string {
	delete(set, "")
	values := maps.Keys(set)
	collator.SortStrings(values)
	return values
}
