// Package report computes the aggregations the dashboard displays.
//
// Every function here is pure: it only reads the filtered collections
// it is passed and returns plain data structures the presentation
// layer binds to. Empty input yields a well-formed zero result, never
// an error.
package report

import (
	"github.com/andes-mining/capex-backend/internal/models"
	"github.com/shopspring/decimal"
)

// Budget states for the desviación KPI.
const (
	DesviacionSobre  = "sobre-presupuesto"
	DesviacionBajo   = "bajo-presupuesto"
	DesviacionExacto = "en-presupuesto"
)

// Totals are the headline KPIs for the current filter selection.
type Totals struct {
	Presupuestado    decimal.Decimal `json:"presupuestado"`
	Ejecutado        decimal.Decimal `json:"ejecutado"`
	AvancePct        float64         `json:"avancePct"`        // Ejecutado as a percentage of Presupuestado, 0 when there is no budget
	Desviacion       decimal.Decimal `json:"desviacion"`       // Ejecutado - Presupuestado
	DesviacionEstado string          `json:"desviacionEstado"` // Sign of the desviación as an over/under/on budget state
	ProyectosActivos int             `json:"proyectosActivos"` // Number of filtered proyectos with estado "En ejecución"
}

// ComputeTotals sums the filtered registros and counts the active
// projects among the filtered proyectos.
func ComputeTotals(registros []models.Registro, proyectos []models.Proyecto) Totals {
	presupuestado := decimal.Zero
	ejecutado := decimal.Zero

	for _, r := range registros {
		presupuestado = presupuestado.Add(r.Presupuestado)
		ejecutado = ejecutado.Add(r.Ejecutado)
	}

	activos := 0
	for _, p := range proyectos {
		if p.Activo() {
			activos++
		}
	}

	desviacion := ejecutado.Sub(presupuestado)

	estado := DesviacionExacto
	switch desviacion.Sign() {
	case 1:
		estado = DesviacionSobre
	case -1:
		estado = DesviacionBajo
	}

	return Totals{
		Presupuestado:    presupuestado,
		Ejecutado:        ejecutado,
		AvancePct:        percentage(ejecutado, presupuestado),
		Desviacion:       desviacion,
		DesviacionEstado: estado,
		ProyectosActivos: activos,
	}
}

// percentage returns part/total*100. A zero total yields 0, the "no
// budget yet" case must never surface as a division error or NaN.
func percentage(part, total decimal.Decimal) float64 {
	if total.IsZero() {
		return 0
	}

	return part.Div(total).Mul(decimal.NewFromInt(100)).InexactFloat64()
}
