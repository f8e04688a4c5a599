// Package v1 implements the dashboard API.
package v1

import (
	"net/http"

	"github.com/andes-mining/capex-backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the routes for v1 with the RouterGroup
// that is passed.
func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)

	r.OPTIONS("/dashboard", httputil.OptionsGet)
	r.GET("/dashboard", GetDashboard)

	r.OPTIONS("/kpis", httputil.OptionsGet)
	r.GET("/kpis", GetKPIs)

	r.OPTIONS("/series", httputil.OptionsGet)
	r.GET("/series", GetSeries)

	r.OPTIONS("/ranking", httputil.OptionsGet)
	r.GET("/ranking", GetRanking)

	r.OPTIONS("/agrupado/:dimension", httputil.OptionsGet)
	r.GET("/agrupado/:dimension", GetAgrupado)

	r.OPTIONS("/filtros", httputil.OptionsGet)
	r.GET("/filtros", GetFiltros)
}

type Links struct {
	Dashboard string `json:"dashboard" example:"https://example.com/v1/dashboard"` // The full dashboard, all aggregations in one response
	KPIs      string `json:"kpis" example:"https://example.com/v1/kpis"`           // KPI totals
	Series    string `json:"series" example:"https://example.com/v1/series"`       // Monthly time series
	Ranking   string `json:"ranking" example:"https://example.com/v1/ranking"`     // Top projects by ejecutado
	Agrupado  string `json:"agrupado" example:"https://example.com/v1/agrupado"`   // Sums grouped by a project attribute
	Filtros   string `json:"filtros" example:"https://example.com/v1/filtros"`     // Selectable filter values
}

type Response struct {
	Links Links `json:"links"`
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			General
// @Success		200	{object}	Response
// @Router			/v1 [get]
func Get(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Links: Links{
			Dashboard: "/v1/dashboard",
			KPIs:      "/v1/kpis",
			Series:    "/v1/series",
			Ranking:   "/v1/ranking",
			Agrupado:  "/v1/agrupado",
			Filtros:   "/v1/filtros",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
