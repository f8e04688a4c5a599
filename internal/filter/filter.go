// Package filter computes the subset of the dataset matching a
// selection.
package filter

import (
	"github.com/andes-mining/capex-backend/internal/models"
)

// Selection is one filter query: each field is either its zero value
// (no constraint) or a single exact-match value. All set fields must
// match at once, there is no OR.
//
// The zero Selection matches the full dataset, which makes "clear all
// filters" a plain Selection{}.
type Selection struct {
	Anio   int    `form:"anio"`
	Mes    int    `form:"mes"`
	Area   string `form:"area"`
	Tipo   string `form:"tipo"`
	Estado string `form:"estado"`
	Region string `form:"region"`
}

// IsEmpty reports whether no constraint is set.
func (s Selection) IsEmpty() bool {
	return s == Selection{}
}

// Matches reports whether a registro joined with its proyecto
// satisfies every set constraint.
func (s Selection) Matches(registro models.Registro, proyecto models.Proyecto) bool {
	if s.Anio != 0 && registro.Anio != s.Anio {
		return false
	}

	if s.Mes != 0 && registro.Mes != s.Mes {
		return false
	}

	if s.Area != "" && proyecto.Area != s.Area {
		return false
	}

	if s.Tipo != "" && proyecto.Tipo != s.Tipo {
		return false
	}

	if s.Estado != "" && proyecto.EstadoDisplay() != s.Estado {
		return false
	}

	if s.Region != "" && proyecto.Region != s.Region {
		return false
	}

	return true
}

// Apply returns the registros matching the selection and the proyectos
// referenced by at least one of them. Input order is preserved in both
// results.
//
// Registros whose IDProyecto has no entry in the lookup are always
// excluded. They are a data quality issue in the source dataset, not
// an error.
func Apply(proyectos []models.Proyecto, registros []models.Registro, lookup map[string]models.Proyecto, selection Selection) ([]models.Registro, []models.Proyecto) {
	matched := make([]models.Registro, 0, len(registros))
	referenced := make(map[string]bool)

	for _, registro := range registros {
		proyecto, ok := lookup[registro.IDProyecto]
		if !ok {
			continue
		}

		if !selection.Matches(registro, proyecto) {
			continue
		}

		matched = append(matched, registro)
		referenced[registro.IDProyecto] = true
	}

	matchedProyectos := make([]models.Proyecto, 0, len(referenced))
	for _, proyecto := range proyectos {
		if referenced[proyecto.ID] {
			matchedProyectos = append(matchedProyectos, proyecto)
		}
	}

	return matched, matchedProyectos
}
