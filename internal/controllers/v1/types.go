package v1

import (
	"github.com/andes-mining/capex-backend/internal/dataset"
	"github.com/andes-mining/capex-backend/internal/report"
)

// Slice sizes for the ranking consumers. The comparison chart shows a
// strict prefix of the table ranking, both always come from the same
// computation.
const (
	RankingTableSize    = 10
	ComparisonChartSize = 8
)

// KPIs are the totals plus their display forms. The formatted strings
// are part of the contract, the frontend renders them as-is.
type KPIs struct {
	report.Totals
	PresupuestadoFmt string `json:"presupuestadoFmt" example:"$3.5M"`
	EjecutadoFmt     string `json:"ejecutadoFmt" example:"$2.5M"`
	AvanceFmt        string `json:"avanceFmt" example:"71.4%"`
	DesviacionFmt    string `json:"desviacionFmt" example:"$1.0M"`
}

func newKPIs(totals report.Totals) KPIs {
	return KPIs{
		Totals:           totals,
		PresupuestadoFmt: report.FormatUSD(totals.Presupuestado),
		EjecutadoFmt:     report.FormatUSD(totals.Ejecutado),
		AvanceFmt:        report.FormatPct(totals.AvancePct),
		DesviacionFmt:    report.FormatUSD(totals.Desviacion.Abs()),
	}
}

// RankingRow is a ranking entry plus its display forms.
type RankingRow struct {
	report.RankingEntry
	PresupuestadoFmt string `json:"presupuestadoFmt" example:"$1.2M"`
	EjecutadoFmt     string `json:"ejecutadoFmt" example:"$980K"`
	AvanceFmt        string `json:"avanceFmt" example:"81.7%"`
}

func newRankingRows(entries []report.RankingEntry) []RankingRow {
	rows := make([]RankingRow, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, RankingRow{
			RankingEntry:     entry,
			PresupuestadoFmt: report.FormatUSD(entry.Presupuestado),
			EjecutadoFmt:     report.FormatUSD(entry.Ejecutado),
			AvanceFmt:        report.FormatPct(entry.AvancePct),
		})
	}

	return rows
}

// Dashboard is the full recompute for one filter selection.
type Dashboard struct {
	KPIs        KPIs            `json:"kpis"`
	PorArea     []report.Group  `json:"porArea"`
	PorTipo     []report.Group  `json:"porTipo"`
	Series      []report.Bucket `json:"series"`
	Ranking     []RankingRow    `json:"ranking"`     // Top 10 for the table
	Comparacion []RankingRow    `json:"comparacion"` // First 8 of the same ranking for the chart
}

type DashboardResponse struct {
	Data  *Dashboard `json:"data"`
	Error *string    `json:"error" example:"the dataset could not be loaded, no dashboard data is available"`
}

type KPIsResponse struct {
	Data  *KPIs   `json:"data"`
	Error *string `json:"error" example:"the dataset could not be loaded, no dashboard data is available"`
}

type SeriesResponse struct {
	Data  []report.Bucket `json:"data"`
	Error *string         `json:"error" example:"the dataset could not be loaded, no dashboard data is available"`
}

type RankingResponse struct {
	Data  []RankingRow `json:"data"`
	Error *string      `json:"error" example:"the dataset could not be loaded, no dashboard data is available"`
}

type AgrupadoResponse struct {
	Data  []report.Group `json:"data"`
	Error *string        `json:"error" example:"unknown grouping dimension"`
}

type FiltrosResponse struct {
	Data  *dataset.Options `json:"data"`
	Error *string          `json:"error" example:"the dataset could not be loaded, no dashboard data is available"`
}
