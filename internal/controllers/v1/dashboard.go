package v1

import (
	"errors"
	"net/http"

	"github.com/andes-mining/capex-backend/internal/dataset"
	"github.com/andes-mining/capex-backend/internal/filter"
	"github.com/andes-mining/capex-backend/internal/httputil"
	"github.com/andes-mining/capex-backend/internal/models"
	"github.com/andes-mining/capex-backend/internal/report"
	"github.com/gin-gonic/gin"
)

var (
	errNoDataset     = errors.New("the dataset could not be loaded, no dashboard data is available")
	errInvalidFilter = errors.New("the filter parameters contain invalid values, anio and mes must be numbers")
)

// currentSnapshot returns the active snapshot or responds with the
// "data could not be loaded" state. That state is an HTTP 503 so that
// the frontend can tell it apart from a valid selection matching zero
// records, which is a normal 200 with zeroed data.
func currentSnapshot(c *gin.Context) (*dataset.Snapshot, bool) {
	snapshot, ok := dataset.Current()
	if !ok {
		httputil.NewError(c, http.StatusServiceUnavailable, errNoDataset)
	}

	return snapshot, ok
}

// bindSelection binds the six filter query parameters. No parameters
// set means the full dataset.
func bindSelection(c *gin.Context) (filter.Selection, bool) {
	var selection filter.Selection
	if err := c.ShouldBind(&selection); err != nil {
		httputil.NewError(c, http.StatusBadRequest, errInvalidFilter)
		return selection, false
	}

	return selection, true
}

// apply runs the filter pipeline for the current request.
func apply(snapshot *dataset.Snapshot, selection filter.Selection) ([]models.Registro, []models.Proyecto) {
	return filter.Apply(snapshot.Proyectos, snapshot.Registros, snapshot.Lookup, selection)
}

// @Summary		Dashboard
// @Description	Returns all aggregations for the given filter selection in one response
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	DashboardResponse
// @Failure		400	{object}	httputil.HTTPError
// @Failure		503	{object}	httputil.HTTPError
// @Param			anio	query	int		false	"Filter by year"
// @Param			mes		query	int		false	"Filter by month (1-12)"
// @Param			area	query	string	false	"Filter by project area"
// @Param			tipo	query	string	false	"Filter by project type"
// @Param			estado	query	string	false	"Filter by project state"
// @Param			region	query	string	false	"Filter by project region"
// @Router			/v1/dashboard [get]
func GetDashboard(c *gin.Context) {
	snapshot, ok := currentSnapshot(c)
	if !ok {
		return
	}

	selection, ok := bindSelection(c)
	if !ok {
		return
	}

	registros, proyectos := apply(snapshot, selection)

	ranking := newRankingRows(report.Ranking(registros, snapshot.Lookup, RankingTableSize))

	comparacion := ranking
	if len(comparacion) > ComparisonChartSize {
		comparacion = comparacion[:ComparisonChartSize]
	}

	data := Dashboard{
		KPIs:        newKPIs(report.ComputeTotals(registros, proyectos)),
		PorArea:     report.GroupBy(registros, snapshot.Lookup, report.DimensionArea),
		PorTipo:     report.GroupBy(registros, snapshot.Lookup, report.DimensionTipo),
		Series:      report.MonthlySeries(registros),
		Ranking:     ranking,
		Comparacion: comparacion,
	}

	c.JSON(http.StatusOK, DashboardResponse{Data: &data})
}

// @Summary		KPI totals
// @Description	Returns the KPI totals for the given filter selection
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	KPIsResponse
// @Failure		400	{object}	httputil.HTTPError
// @Failure		503	{object}	httputil.HTTPError
// @Router			/v1/kpis [get]
func GetKPIs(c *gin.Context) {
	snapshot, ok := currentSnapshot(c)
	if !ok {
		return
	}

	selection, ok := bindSelection(c)
	if !ok {
		return
	}

	registros, proyectos := apply(snapshot, selection)

	kpis := newKPIs(report.ComputeTotals(registros, proyectos))
	c.JSON(http.StatusOK, KPIsResponse{Data: &kpis})
}

// @Summary		Monthly time series
// @Description	Returns the month buckets for the given filter selection in chronological order
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	SeriesResponse
// @Failure		400	{object}	httputil.HTTPError
// @Failure		503	{object}	httputil.HTTPError
// @Router			/v1/series [get]
func GetSeries(c *gin.Context) {
	snapshot, ok := currentSnapshot(c)
	if !ok {
		return
	}

	selection, ok := bindSelection(c)
	if !ok {
		return
	}

	registros, _ := apply(snapshot, selection)

	c.JSON(http.StatusOK, SeriesResponse{Data: report.MonthlySeries(registros)})
}

type RankingQuery struct {
	Limit int `form:"limit,default=10"` // Maximum number of projects to return. Defaults to 10.
}

// @Summary		Project ranking
// @Description	Returns the projects with the highest ejecutado for the given filter selection, in descending order
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	RankingResponse
// @Failure		400	{object}	httputil.HTTPError
// @Failure		503	{object}	httputil.HTTPError
// @Param			limit	query	int	false	"Maximum number of projects to return. Defaults to 10."
// @Router			/v1/ranking [get]
func GetRanking(c *gin.Context) {
	snapshot, ok := currentSnapshot(c)
	if !ok {
		return
	}

	selection, ok := bindSelection(c)
	if !ok {
		return
	}

	var query RankingQuery
	if err := c.ShouldBind(&query); err != nil {
		httputil.NewError(c, http.StatusBadRequest, errInvalidFilter)
		return
	}

	registros, _ := apply(snapshot, selection)

	c.JSON(http.StatusOK, RankingResponse{Data: newRankingRows(report.Ranking(registros, snapshot.Lookup, query.Limit))})
}

// @Summary		Grouped sums
// @Description	Returns presupuestado and ejecutado summed per value of a project attribute
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	AgrupadoResponse
// @Failure		400	{object}	httputil.HTTPError
// @Failure		503	{object}	httputil.HTTPError
// @Param			dimension	path	string	true	"Project attribute to group by, one of: area, tipo"
// @Router			/v1/agrupado/{dimension} [get]
func GetAgrupado(c *gin.Context) {
	snapshot, ok := currentSnapshot(c)
	if !ok {
		return
	}

	dimension, err := report.ParseDimension(c.Param("dimension"))
	if err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return
	}

	selection, ok := bindSelection(c)
	if !ok {
		return
	}

	registros, _ := apply(snapshot, selection)

	c.JSON(http.StatusOK, AgrupadoResponse{Data: report.GroupBy(registros, snapshot.Lookup, dimension)})
}

// @Summary		Filter options
// @Description	Returns the selectable values per filter dimension, derived from the unfiltered dataset
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	FiltrosResponse
// @Failure		503	{object}	httputil.HTTPError
// @Router			/v1/filtros [get]
func GetFiltros(c *gin.Context) {
	snapshot, ok := currentSnapshot(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, FiltrosResponse{Data: &snapshot.Options})
}
