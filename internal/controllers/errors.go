package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/restaurant-pizzas-api/internal/metrics"
	"github.com/franciscosanchezn/restaurant-pizzas-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizzas-api/internal/services"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// respondWithError maps service errors to the API's error bodies
func respondWithError(ctx *gin.Context, m *metrics.Metrics, err error) {
	var validationErr *services.ValidationError
	switch {
	case errors.Is(err, services.ErrRestaurantNotFound):
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse(models.MsgRestaurantNotFound))
	case errors.As(err, &validationErr):
		m.ValidationFailed()
		ctx.JSON(http.StatusBadRequest, models.NewValidationErrorResponse(validationErr.Messages))
	default:
		_ = ctx.Error(err)
		log.WithFields(log.Fields{
			"request_id": requestid.Get(ctx),
			"path":       ctx.FullPath(),
		}).WithError(err).Error("Unhandled error")
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse(models.MsgInternalServer))
	}
}

// restaurantIDParam parses the :id path segment. Anything that is not a
// positive integer cannot name a restaurant and is reported as not found.
func restaurantIDParam(ctx *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, services.ErrRestaurantNotFound
	}
	return uint(id), nil
}
