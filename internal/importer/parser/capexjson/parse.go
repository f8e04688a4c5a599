// Package capexjson parses the JSON dataset documents the CAPEX
// dashboard is fed with.
package capexjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/andes-mining/capex-backend/internal/importer"
	"github.com/andes-mining/capex-backend/internal/models"
)

var (
	errNoProyectos       = errors.New("the dataset does not contain any proyectos")
	errEmptyProyectoID   = errors.New("proyecto without an id")
	errDuplicateProyecto = errors.New("duplicate proyecto id")
	errInvalidMes        = errors.New("mes must be between 1 and 12")
	errNegativeAmount    = errors.New("presupuestado and ejecutado must not be negative")
)

// Parse reads a dataset document and returns the parsed resources.
//
// Records referencing a proyecto that is not part of the document are
// kept: the source data contains them and the filter join excludes
// them from all results.
func Parse(f io.Reader) (importer.ParsedDataset, error) {
	content, err := io.ReadAll(f)
	if err != nil {
		return importer.ParsedDataset{}, fmt.Errorf("could not read data from file: %w", err)
	}

	var dataset Dataset
	err = json.Unmarshal(content, &dataset)
	if err != nil {
		return importer.ParsedDataset{}, fmt.Errorf("not a valid dataset document: %w", err)
	}

	var parsed importer.ParsedDataset

	err = parseProyectos(&parsed, dataset.Proyectos)
	if err != nil {
		return importer.ParsedDataset{}, fmt.Errorf("error parsing proyectos: %w", err)
	}

	err = parseRegistros(&parsed, dataset.Registros)
	if err != nil {
		return importer.ParsedDataset{}, fmt.Errorf("error parsing registros: %w", err)
	}

	return parsed, nil
}

func parseProyectos(parsed *importer.ParsedDataset, proyectos []Proyecto) error {
	if len(proyectos) == 0 {
		return errNoProyectos
	}

	seen := make(map[string]bool, len(proyectos))
	for _, p := range proyectos {
		if p.ID == "" {
			return fmt.Errorf("%w: %q", errEmptyProyectoID, p.Nombre)
		}

		if seen[p.ID] {
			return fmt.Errorf("%w: %q", errDuplicateProyecto, p.ID)
		}
		seen[p.ID] = true

		parsed.Proyectos = append(parsed.Proyectos, models.Proyecto{
			ID:          p.ID,
			Nombre:      p.Nombre,
			Area:        p.Area,
			Tipo:        p.Tipo,
			Estado:      p.Estado,
			Region:      p.Region,
			Responsable: p.Responsable,
		})
	}

	return nil
}

func parseRegistros(parsed *importer.ParsedDataset, registros []Registro) error {
	for i, r := range registros {
		if r.Mes < 1 || r.Mes > 12 {
			return fmt.Errorf("%w: registro %d has mes %d", errInvalidMes, i, r.Mes)
		}

		if r.Presupuestado.IsNegative() || r.Ejecutado.IsNegative() {
			return fmt.Errorf("%w: registro %d", errNegativeAmount, i)
		}

		parsed.Registros = append(parsed.Registros, models.Registro{
			IDProyecto:    r.IDProyecto,
			Anio:          r.Anio,
			Mes:           r.Mes,
			Presupuestado: r.Presupuestado,
			Ejecutado:     r.Ejecutado,
		})
	}

	return nil
}
