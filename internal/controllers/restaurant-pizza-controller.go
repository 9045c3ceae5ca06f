package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/restaurant-pizzas-api/internal/metrics"
	"github.com/franciscosanchezn/restaurant-pizzas-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizzas-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RestaurantPizzaController handles HTTP requests that price pizzas at restaurants
type RestaurantPizzaController interface {
	// CreateRestaurantPizza creates a new restaurant pizza
	CreateRestaurantPizza(c *gin.Context)
}

type restaurantPizzaController struct {
	service services.RestaurantPizzaService
	metrics *metrics.Metrics
}

// NewRestaurantPizzaController creates a new instance of RestaurantPizzaController
func NewRestaurantPizzaController(service services.RestaurantPizzaService, m *metrics.Metrics) RestaurantPizzaController {
	return &restaurantPizzaController{service: service, metrics: m}
}

// CreateRestaurantPizza godoc
// @Summary Create a restaurant pizza
// @Description Offer a pizza at a restaurant for a price between 1 and 30
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body CreateRestaurantPizzaRequest true "Price, pizza and restaurant"
// @Success 201 {object} models.RestaurantPizzaResponse
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurant_pizzas [post]
func (c *restaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	var req CreateRestaurantPizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.metrics.ValidationFailed()
		ctx.JSON(http.StatusBadRequest, models.NewValidationErrorResponse([]string{models.MsgInvalidRequestBody}))
		return
	}

	if err := req.Validate(); err != nil {
		respondWithError(ctx, c.metrics, services.AsValidationError(err))
		return
	}

	created, err := c.service.CreateRestaurantPizza(ctx.Request.Context(), req.Model())
	if err != nil {
		respondWithError(ctx, c.metrics, err)
		return
	}
	c.metrics.RestaurantPizzaCreated()
	ctx.JSON(http.StatusCreated, models.NewRestaurantPizzaResponse(created))
}
