package report

import (
	"sort"

	"github.com/andes-mining/capex-backend/internal/models"
	"github.com/andes-mining/capex-backend/internal/types"
	"github.com/shopspring/decimal"
)

// Bucket is the summed expenditure for one month.
type Bucket struct {
	Month         types.Month     `json:"mes"`
	Label         string          `json:"label"` // Spanish month abbreviation plus year, e.g. "ene 2024"
	Presupuestado decimal.Decimal `json:"presupuestado"`
	Ejecutado     decimal.Decimal `json:"ejecutado"`
}

// MonthlySeries groups the filtered registros by (anio, mes) and
// returns the buckets in chronological order.
//
// Sorting uses the Month's "YYYY-MM" form, which orders correctly
// across year boundaries regardless of input order.
func MonthlySeries(registros []models.Registro) []Bucket {
	buckets := make([]Bucket, 0)
	index := make(map[types.Month]int)

	for _, r := range registros {
		month := r.Month()

		i, ok := index[month]
		if !ok {
			i = len(buckets)
			index[month] = i
			buckets = append(buckets, Bucket{
				Month:         month,
				Label:         month.Label(),
				Presupuestado: decimal.Zero,
				Ejecutado:     decimal.Zero,
			})
		}

		buckets[i].Presupuestado = buckets[i].Presupuestado.Add(r.Presupuestado)
		buckets[i].Ejecutado = buckets[i].Ejecutado.Add(r.Ejecutado)
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Month.String() < buckets[j].Month.String()
	})

	return buckets
}
