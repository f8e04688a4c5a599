package capexjson

import (
	"github.com/shopspring/decimal"
)

// Dataset is the document format the dashboard dataset is published
// in: one JSON object with the project catalogue and the expenditure
// records as named collections.
type Dataset struct {
	Proyectos []Proyecto `json:"proyectos"`
	Registros []Registro `json:"registros"`
}

type Proyecto struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Area        string `json:"area"`
	Tipo        string `json:"tipo"`
	Estado      string `json:"estado"`
	Region      string `json:"region"`
	Responsable string `json:"responsable"`
}

type Registro struct {
	IDProyecto    string          `json:"id_proyecto"`
	Anio          int             `json:"anio"`
	Mes           int             `json:"mes"`
	Presupuestado decimal.Decimal `json:"presupuestado"`
	Ejecutado     decimal.Decimal `json:"ejecutado"`
}
