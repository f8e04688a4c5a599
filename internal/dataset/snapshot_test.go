package dataset_test

import (
	"testing"

	"github.com/andes-mining/capex-backend/internal/dataset"
	"github.com/andes-mining/capex-backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testSnapshot() *dataset.Snapshot {
	proyectos := []models.Proyecto{
		{ID: "P1", Nombre: "Planta", Area: "Mina A", Tipo: "Expansión", Estado: models.EstadoEnEjecucion, Region: "Antofagasta"},
		{ID: "P2", Nombre: "Tranque", Area: "Mina B", Tipo: "Sostenimiento", Estado: models.EstadoCerrado, Region: "Atacama"},
		{ID: "P3", Nombre: "Exploración", Area: "Ñuble", Tipo: "Estudio", Estado: "Cancelado", Region: "Zona Sur"},
	}
	registros := []models.Registro{
		{IDProyecto: "P1", Anio: 2025, Mes: 1, Presupuestado: decimal.NewFromInt(1), Ejecutado: decimal.NewFromInt(1)},
		{IDProyecto: "P2", Anio: 2024, Mes: 6, Presupuestado: decimal.NewFromInt(1), Ejecutado: decimal.NewFromInt(1)},
	}

	return dataset.New(proyectos, registros)
}

func TestNewSnapshot(t *testing.T) {
	snapshot := testSnapshot()

	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", snapshot.ID.String())
	assert.Len(t, snapshot.Lookup, 3)
	assert.Equal(t, "Planta", snapshot.Lookup["P1"].Nombre)
}

func TestSnapshotOptions(t *testing.T) {
	options := testSnapshot().Options

	assert.Equal(t, []int{2024, 2025}, options.Anios)
	assert.Equal(t, []int{1, 6}, options.Meses)

	// Spanish collation: Ñuble sorts before Zona Sur (and after Mina B)
	assert.Equal(t, []string{"Mina A", "Mina B", "Ñuble"}, options.Areas)
	assert.Equal(t, []string{"Estudio", "Expansión", "Sostenimiento"}, options.Tipos)
	assert.Equal(t, []string{"Antofagasta", "Atacama", "Zona Sur"}, options.Regiones)

	// Unknown estados show up as the default display category
	assert.Contains(t, options.Estados, models.EstadoDesconocido)
	assert.Contains(t, options.Estados, models.EstadoEnEjecucion)
}

func TestSessionActivate(t *testing.T) {
	_, ok := dataset.Current()
	assert.False(t, ok, "no snapshot is active before Activate")

	snapshot := testSnapshot()
	dataset.Activate(snapshot)

	active, ok := dataset.Current()
	assert.True(t, ok)
	assert.Equal(t, snapshot.ID, active.ID)
}
