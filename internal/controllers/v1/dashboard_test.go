package v1_test

import (
	"net/http"
	"net/url"

	v1 "github.com/andes-mining/capex-backend/internal/controllers/v1"
	"github.com/andes-mining/capex-backend/internal/dataset"
	"github.com/andes-mining/capex-backend/internal/report"
	"github.com/andes-mining/capex-backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// filterURL builds a request URL with the given filter query
// parameters, taking care of escaping values like "En ejecución".
func filterURL(path string, params map[string]string) string {
	query := url.Values{}
	for key, value := range params {
		query.Set(key, value)
	}

	return path + "?" + query.Encode()
}

func decodeDashboard(suite *TestSuiteStandard, params map[string]string) v1.Dashboard {
	recorder := test.Request(suite.T(), http.MethodGet, filterURL("/v1/dashboard", params))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data, "Dashboard response has no data")

	return *response.Data
}

func (suite *TestSuiteStandard) TestDashboardUnfiltered() {
	dashboard := decodeDashboard(suite, nil)

	assert.True(suite.T(), dashboard.KPIs.Presupuestado.Equal(decimal.NewFromInt(5000)), "Presupuestado is %s", dashboard.KPIs.Presupuestado)
	assert.True(suite.T(), dashboard.KPIs.Ejecutado.Equal(decimal.NewFromInt(2800)), "Ejecutado is %s", dashboard.KPIs.Ejecutado)
	assert.InDelta(suite.T(), float64(56), dashboard.KPIs.AvancePct, 0.001)
	assert.True(suite.T(), dashboard.KPIs.Desviacion.Equal(decimal.NewFromInt(-2200)), "Desviacion is %s", dashboard.KPIs.Desviacion)
	assert.Equal(suite.T(), report.DesviacionBajo, dashboard.KPIs.DesviacionEstado)
	assert.Equal(suite.T(), 1, dashboard.KPIs.ProyectosActivos)

	assert.Equal(suite.T(), "$5K", dashboard.KPIs.PresupuestadoFmt)
	assert.Equal(suite.T(), "56.0%", dashboard.KPIs.AvanceFmt)
	assert.Equal(suite.T(), "$2K", dashboard.KPIs.DesviacionFmt, "Desviación renders its absolute value")

	// Groups appear in first-seen order of the registros
	if assert.Len(suite.T(), dashboard.PorArea, 2) {
		assert.Equal(suite.T(), "Mina A", dashboard.PorArea[0].Clave)
		assert.True(suite.T(), dashboard.PorArea[0].Presupuestado.Equal(decimal.NewFromInt(3000)), "Mina A presupuestado is %s", dashboard.PorArea[0].Presupuestado)
		assert.Equal(suite.T(), "Mina B", dashboard.PorArea[1].Clave)
	}

	if assert.Len(suite.T(), dashboard.PorTipo, 3) {
		assert.Equal(suite.T(), "Expansión", dashboard.PorTipo[0].Clave)
		assert.Equal(suite.T(), "Sostenimiento", dashboard.PorTipo[1].Clave)
		assert.Equal(suite.T(), "Estudio", dashboard.PorTipo[2].Clave)
	}

	if assert.Len(suite.T(), dashboard.Series, 4) {
		assert.Equal(suite.T(), "ene 2024", dashboard.Series[0].Label)
		assert.Equal(suite.T(), "feb 2024", dashboard.Series[1].Label)
		assert.Equal(suite.T(), "dic 2024", dashboard.Series[2].Label)
		assert.Equal(suite.T(), "ene 2025", dashboard.Series[3].Label)
		assert.True(suite.T(), dashboard.Series[0].Presupuestado.Equal(decimal.NewFromInt(3000)), "January presupuestado is %s", dashboard.Series[0].Presupuestado)
	}

	if assert.Len(suite.T(), dashboard.Ranking, 3) {
		assert.Equal(suite.T(), "P1", dashboard.Ranking[0].IDProyecto)
		assert.Equal(suite.T(), "P2", dashboard.Ranking[1].IDProyecto)
		assert.Equal(suite.T(), "P3", dashboard.Ranking[2].IDProyecto)

		assert.Equal(suite.T(), report.AvanceEnCamino, dashboard.Ranking[0].Avance)
		assert.Equal(suite.T(), report.AvanceEnCurso, dashboard.Ranking[1].Avance)
		assert.Equal(suite.T(), report.AvanceEnRiesgo, dashboard.Ranking[2].Avance)
	}

	// With three projects, the comparison chart shows the full ranking
	assert.Equal(suite.T(), dashboard.Ranking, dashboard.Comparacion)
}

func (suite *TestSuiteStandard) TestDashboardFilteredByArea() {
	dashboard := decodeDashboard(suite, map[string]string{"area": "Mina A"})

	assert.True(suite.T(), dashboard.KPIs.Presupuestado.Equal(decimal.NewFromInt(3000)), "Presupuestado is %s", dashboard.KPIs.Presupuestado)
	assert.True(suite.T(), dashboard.KPIs.Ejecutado.Equal(decimal.NewFromInt(1800)), "Ejecutado is %s", dashboard.KPIs.Ejecutado)
	assert.InDelta(suite.T(), float64(60), dashboard.KPIs.AvancePct, 0.001)
	assert.Equal(suite.T(), 1, dashboard.KPIs.ProyectosActivos)

	if assert.Len(suite.T(), dashboard.PorArea, 1) {
		assert.Equal(suite.T(), "Mina A", dashboard.PorArea[0].Clave)
	}

	if assert.Len(suite.T(), dashboard.Ranking, 2) {
		assert.Equal(suite.T(), "P1", dashboard.Ranking[0].IDProyecto)
		assert.Equal(suite.T(), "P3", dashboard.Ranking[1].IDProyecto)
	}
}

func (suite *TestSuiteStandard) TestDashboardFilteredByEstado() {
	dashboard := decodeDashboard(suite, map[string]string{"estado": "En ejecución"})

	assert.True(suite.T(), dashboard.KPIs.Presupuestado.Equal(decimal.NewFromInt(1500)), "Presupuestado is %s", dashboard.KPIs.Presupuestado)
	assert.True(suite.T(), dashboard.KPIs.Ejecutado.Equal(decimal.NewFromInt(1500)), "Ejecutado is %s", dashboard.KPIs.Ejecutado)
	assert.InDelta(suite.T(), float64(100), dashboard.KPIs.AvancePct, 0.001)
}

func (suite *TestSuiteStandard) TestDashboardConjunction() {
	dashboard := decodeDashboard(suite, map[string]string{"anio": "2024", "mes": "1", "area": "Mina A"})

	assert.True(suite.T(), dashboard.KPIs.Presupuestado.Equal(decimal.NewFromInt(1000)), "Presupuestado is %s", dashboard.KPIs.Presupuestado)

	if assert.Len(suite.T(), dashboard.Ranking, 1) {
		assert.Equal(suite.T(), "P1", dashboard.Ranking[0].IDProyecto)
	}
}

// An empty selection result is a normal response with zeroed data, not
// an error.
func (suite *TestSuiteStandard) TestDashboardNoMatch() {
	dashboard := decodeDashboard(suite, map[string]string{"anio": "1999"})

	assert.True(suite.T(), dashboard.KPIs.Presupuestado.IsZero(), "Presupuestado is %s", dashboard.KPIs.Presupuestado)
	assert.InDelta(suite.T(), float64(0), dashboard.KPIs.AvancePct, 0.001)
	assert.Equal(suite.T(), 0, dashboard.KPIs.ProyectosActivos)
	assert.Empty(suite.T(), dashboard.PorArea)
	assert.Empty(suite.T(), dashboard.Series)
	assert.Empty(suite.T(), dashboard.Ranking)
}

func (suite *TestSuiteStandard) TestDashboardInvalidFilter() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/dashboard?anio=notanumber")
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
	assert.Equal(suite.T(), "the filter parameters contain invalid values, anio and mes must be numbers", test.DecodeError(suite.T(), recorder.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestDashboardNoDataset() {
	dataset.Activate(nil)

	for _, path := range []string{"/v1/dashboard", "/v1/kpis", "/v1/series", "/v1/ranking", "/v1/agrupado/area", "/v1/filtros"} {
		recorder := test.Request(suite.T(), http.MethodGet, path)
		test.AssertHTTPStatus(suite.T(), http.StatusServiceUnavailable, &recorder)
		assert.Equal(suite.T(), "the dataset could not be loaded, no dashboard data is available", test.DecodeError(suite.T(), recorder.Body.Bytes()), "Error for %s is wrong", path)
	}
}

func (suite *TestSuiteStandard) TestKPIs() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/kpis")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.KPIsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if assert.NotNil(suite.T(), response.Data) {
		assert.True(suite.T(), response.Data.Presupuestado.Equal(decimal.NewFromInt(5000)), "Presupuestado is %s", response.Data.Presupuestado)
		assert.Equal(suite.T(), "56.0%", response.Data.AvanceFmt)
	}
}

func (suite *TestSuiteStandard) TestSeries() {
	recorder := test.Request(suite.T(), http.MethodGet, filterURL("/v1/series", map[string]string{"area": "Mina A"}))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.SeriesResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if assert.Len(suite.T(), response.Data, 4) {
		assert.Equal(suite.T(), "2024-12", response.Data[2].Month.String())
		assert.Equal(suite.T(), "2025-01", response.Data[3].Month.String(), "December must sort before January of the next year")
	}
}

func (suite *TestSuiteStandard) TestRankingLimit() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/ranking?limit=2")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.RankingResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if assert.Len(suite.T(), response.Data, 2) {
		assert.Equal(suite.T(), "P1", response.Data[0].IDProyecto)
		assert.Equal(suite.T(), "P2", response.Data[1].IDProyecto)
	}
}

func (suite *TestSuiteStandard) TestAgrupado() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/agrupado/tipo")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.AgrupadoResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if assert.Len(suite.T(), response.Data, 3) {
		assert.Equal(suite.T(), "Expansión", response.Data[0].Clave)
		assert.True(suite.T(), response.Data[0].Presupuestado.Equal(decimal.NewFromInt(1500)), "Expansión presupuestado is %s", response.Data[0].Presupuestado)
	}
}

func (suite *TestSuiteStandard) TestAgrupadoUnknownDimension() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/agrupado/responsable")
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
	assert.Contains(suite.T(), test.DecodeError(suite.T(), recorder.Body.Bytes()), "unknown grouping dimension")
}

// Filter options come from the unfiltered dataset, applying a filter
// must not shrink them.
func (suite *TestSuiteStandard) TestFiltros() {
	for _, requestURL := range []string{"/v1/filtros", filterURL("/v1/filtros", map[string]string{"area": "Mina B"})} {
		recorder := test.Request(suite.T(), http.MethodGet, requestURL)
		test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

		var response v1.FiltrosResponse
		test.DecodeResponse(suite.T(), &recorder, &response)

		if assert.NotNil(suite.T(), response.Data) {
			assert.Equal(suite.T(), []int{2024, 2025}, response.Data.Anios)
			assert.Equal(suite.T(), []int{1, 2, 3, 12}, response.Data.Meses)
			assert.Equal(suite.T(), []string{"Mina A", "Mina B"}, response.Data.Areas)
			assert.Contains(suite.T(), response.Data.Estados, "En ejecución")
		}
	}
}

func (suite *TestSuiteStandard) TestV1Get() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.Response
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), "/v1/dashboard", response.Links.Dashboard)
	assert.Equal(suite.T(), "/v1/filtros", response.Links.Filtros)
}

func (suite *TestSuiteStandard) TestV1Options() {
	recorder := test.Request(suite.T(), http.MethodOptions, "/v1/dashboard")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)
	assert.Equal(suite.T(), "OPTIONS, GET", recorder.Header().Get("allow"))
}
