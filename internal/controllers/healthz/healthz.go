// Package healthz implements the health check endpoint.
package healthz

import (
	"errors"
	"net/http"

	"github.com/andes-mining/capex-backend/internal/dataset"
	"github.com/andes-mining/capex-backend/internal/httputil"
	"github.com/andes-mining/capex-backend/internal/models"
	"github.com/gin-gonic/gin"
)

var errDatasetNotLoaded = errors.New("the dataset is not loaded")

// RegisterRoutes registers the routes for the healthz endpoint.
func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		503	{object}	httputil.HTTPError
// @Router			/healthz [get]
func Get(c *gin.Context) {
	sqlDB, err := models.DB.DB()
	if err != nil {
		httputil.NewError(c, http.StatusServiceUnavailable, err)
		return
	}

	if err := sqlDB.Ping(); err != nil {
		httputil.NewError(c, http.StatusServiceUnavailable, err)
		return
	}

	if _, ok := dataset.Current(); !ok {
		httputil.NewError(c, http.StatusServiceUnavailable, errDatasetNotLoaded)
		return
	}

	c.Status(http.StatusNoContent)
}
