package report

import (
	"errors"
	"fmt"

	"github.com/andes-mining/capex-backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// NAGroup is the group registros fall into when their proyecto does
// not carry the grouping attribute.
const NAGroup = "N/A"

// Dimension is a project attribute registros can be grouped by.
//
// This is a closed enumeration with an explicit accessor per value, we
// do not group by arbitrary field names.
type Dimension string

const (
	DimensionArea Dimension = "area"
	DimensionTipo Dimension = "tipo"
)

// Dimensions lists all valid grouping dimensions.
var Dimensions = []Dimension{DimensionArea, DimensionTipo}

var ErrUnknownDimension = errors.New("unknown grouping dimension")

// ParseDimension returns the Dimension a string names.
func ParseDimension(s string) (Dimension, error) {
	dimension := Dimension(s)
	if !slices.Contains(Dimensions, dimension) {
		return "", fmt.Errorf("%w: %q", ErrUnknownDimension, s)
	}

	return dimension, nil
}

func (d Dimension) value(p models.Proyecto) string {
	switch d {
	case DimensionArea:
		return p.Area
	case DimensionTipo:
		return p.Tipo
	}

	return ""
}

// Group is the summed expenditure for one value of the grouping
// dimension.
type Group struct {
	Clave         string          `json:"clave"`
	Presupuestado decimal.Decimal `json:"presupuestado"`
	Ejecutado     decimal.Decimal `json:"ejecutado"`
}

// GroupBy sums the filtered registros per value of the given project
// attribute. Groups appear in first-seen order of their key, consumers
// are free to reorder for display.
func GroupBy(registros []models.Registro, lookup map[string]models.Proyecto, dimension Dimension) []Group {
	groups := make([]Group, 0)
	index := make(map[string]int)

	for _, r := range registros {
		key := dimension.value(lookup[r.IDProyecto])
		if key == "" {
			key = NAGroup
		}

		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Clave: key, Presupuestado: decimal.Zero, Ejecutado: decimal.Zero})
		}

		groups[i].Presupuestado = groups[i].Presupuestado.Add(r.Presupuestado)
		groups[i].Ejecutado = groups[i].Ejecutado.Add(r.Ejecutado)
	}

	return groups
}
