package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/restaurant-pizzas-api/internal/metrics"
	"github.com/franciscosanchezn/restaurant-pizzas-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizzas-api/internal/services"
	"github.com/gin-gonic/gin"
)

// PizzaController handles HTTP requests related to pizzas
type PizzaController interface {
	// GetAllPizzas retrieves all pizzas
	GetAllPizzas(c *gin.Context)
}

type pizzaController struct {
	service services.PizzaService
	metrics *metrics.Metrics
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(service services.PizzaService, m *metrics.Metrics) PizzaController {
	return &pizzaController{service: service, metrics: m}
}

// GetAllPizzas godoc
// @Summary Get all pizzas
// @Description Get a list of all pizzas with their ingredients
// @Tags pizzas
// @Produce json
// @Success 200 {array} models.PizzaResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /pizzas [get]
func (c *pizzaController) GetAllPizzas(ctx *gin.Context) {
	pizzas, err := c.service.ListPizzas(ctx.Request.Context())
	if err != nil {
		respondWithError(ctx, c.metrics, err)
		return
	}
	ctx.JSON(http.StatusOK, models.NewPizzaResponses(pizzas))
}
