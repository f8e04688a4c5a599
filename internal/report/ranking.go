package report

import (
	"sort"

	"github.com/andes-mining/capex-backend/internal/models"
	"github.com/shopspring/decimal"
)

// Execution status of a ranking entry.
const (
	AvanceEnCamino = "on-track"    // green
	AvanceEnRiesgo = "at-risk"     // red
	AvanceEnCurso  = "in-progress" // yellow
)

// RankingEntry is the summed expenditure of one project, together with
// the display attributes the table and the comparison chart need.
type RankingEntry struct {
	IDProyecto     string          `json:"id_proyecto"`
	Nombre         string          `json:"nombre"`
	Area           string          `json:"area"`
	Estado         string          `json:"estado"`
	Responsable    string          `json:"responsable"`
	Presupuestado  decimal.Decimal `json:"presupuestado"`
	Ejecutado      decimal.Decimal `json:"ejecutado"`
	AvancePct      float64         `json:"avancePct"`
	SobreEjecutado bool            `json:"sobreEjecutado"`
	Avance         string          `json:"avance"` // status classification, see Status
}

// Status classifies an entry's execution.
//
// Over-execution always forces at-risk, even when the percentage is in
// the on-track band.
func Status(pct float64, sobreEjecutado bool) string {
	if sobreEjecutado || pct < 50 {
		return AvanceEnRiesgo
	}

	if pct >= 90 {
		return AvanceEnCamino
	}

	return AvanceEnCurso
}

// Ranking sums the filtered registros per project and returns the n
// projects with the highest ejecutado, in descending order. Ties keep
// their first-seen order.
//
// A smaller slice of the same ranking is a strict prefix of a larger
// one, so the table (n=10) and the comparison chart (n=8) stay
// consistent with each other.
//
// Projects missing from the lookup still get a row, with empty
// display attributes.
func Ranking(registros []models.Registro, lookup map[string]models.Proyecto, n int) []RankingEntry {
	entries := make([]RankingEntry, 0)
	index := make(map[string]int)

	for _, r := range registros {
		i, ok := index[r.IDProyecto]
		if !ok {
			proyecto := lookup[r.IDProyecto]

			i = len(entries)
			index[r.IDProyecto] = i
			entries = append(entries, RankingEntry{
				IDProyecto:    r.IDProyecto,
				Nombre:        proyecto.Nombre,
				Area:          proyecto.Area,
				Estado:        proyecto.EstadoDisplay(),
				Responsable:   proyecto.Responsable,
				Presupuestado: decimal.Zero,
				Ejecutado:     decimal.Zero,
			})
		}

		entries[i].Presupuestado = entries[i].Presupuestado.Add(r.Presupuestado)
		entries[i].Ejecutado = entries[i].Ejecutado.Add(r.Ejecutado)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Ejecutado.GreaterThan(entries[j].Ejecutado)
	})

	for i := range entries {
		entries[i].AvancePct = percentage(entries[i].Ejecutado, entries[i].Presupuestado)
		entries[i].SobreEjecutado = entries[i].Ejecutado.GreaterThan(entries[i].Presupuestado)
		entries[i].Avance = Status(entries[i].AvancePct, entries[i].SobreEjecutado)
	}

	if n >= 0 && len(entries) > n {
		entries = entries[:n]
	}

	return entries
}
