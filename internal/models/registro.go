package models

import (
	"time"

	"github.com/andes-mining/capex-backend/internal/types"
	"github.com/shopspring/decimal"
)

// Registro is one dated expenditure entry for a project.
//
// IDProyecto references Proyecto.ID by value. Referential integrity is
// not enforced on load: the source data is known to contain orphaned
// records, which are tolerated here and excluded when filtering.
type Registro struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	IDProyecto    string          `json:"id_proyecto" gorm:"index" example:"P-014"`
	Anio          int             `json:"anio" example:"2024"`
	Mes           int             `json:"mes" example:"7"`
	Presupuestado decimal.Decimal `json:"presupuestado" gorm:"type:DECIMAL(20,8)" example:"1250000"`
	Ejecutado     decimal.Decimal `json:"ejecutado" gorm:"type:DECIMAL(20,8)" example:"980000"`
}

// Month returns the month the record belongs to.
func (r Registro) Month() types.Month {
	return types.NewMonth(r.Anio, time.Month(r.Mes))
}
