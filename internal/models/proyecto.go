package models

// Estado values a Proyecto can have. The dataset is not guaranteed to
// stay inside this enumeration, so unknown values degrade to
// EstadoDesconocido instead of failing.
const (
	EstadoEnEjecucion     = "En ejecución"
	EstadoCerrado         = "Cerrado"
	EstadoPausado         = "Pausado"
	EstadoEnPlanificacion = "En planificación"

	// EstadoDesconocido is the display category for estados outside the
	// known enumeration.
	EstadoDesconocido = "Sin estado"
)

// Proyecto represents one mining capital project.
//
// The ID is the natural key from the dataset, not a surrogate one, so
// expenditure records can reference projects by the value they carry
// in the source document.
type Proyecto struct {
	ID          string `json:"id" gorm:"primaryKey" example:"P-014"`
	Nombre      string `json:"nombre" example:"Ampliación Chancado Primario"`
	Area        string `json:"area" example:"Mina"`
	Tipo        string `json:"tipo" example:"Expansión"`
	Estado      string `json:"estado" example:"En ejecución"`
	Region      string `json:"region" example:"Antofagasta"`
	Responsable string `json:"responsable" example:"G. Rojas"`
}

// EstadoDisplay returns the estado if it is part of the known
// enumeration and the default display category otherwise.
func (p Proyecto) EstadoDisplay() string {
	switch p.Estado {
	case EstadoEnEjecucion, EstadoCerrado, EstadoPausado, EstadoEnPlanificacion:
		return p.Estado
	}

	return EstadoDesconocido
}

// Activo reports whether the project counts towards the active
// projects KPI.
func (p Proyecto) Activo() bool {
	return p.Estado == EstadoEnEjecucion
}
