package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/restaurant-pizzas-api/internal/metrics"
	"github.com/franciscosanchezn/restaurant-pizzas-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizzas-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RestaurantController handles HTTP requests related to restaurants
type RestaurantController interface {
	// GetAllRestaurants lists restaurants without their pizzas
	GetAllRestaurants(c *gin.Context)
	// GetRestaurantByID returns a restaurant with its pizzas expanded
	GetRestaurantByID(c *gin.Context)
	// DeleteRestaurant deletes a restaurant and its restaurant pizzas
	DeleteRestaurant(c *gin.Context)
}

type restaurantController struct {
	service services.RestaurantService
	metrics *metrics.Metrics
}

// NewRestaurantController creates a new instance of RestaurantController
func NewRestaurantController(service services.RestaurantService, m *metrics.Metrics) RestaurantController {
	return &restaurantController{service: service, metrics: m}
}

// GetAllRestaurants godoc
// @Summary List restaurants
// @Description Get every restaurant with its id, name and address
// @Tags restaurants
// @Produce json
// @Success 200 {array} models.RestaurantResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants [get]
func (c *restaurantController) GetAllRestaurants(ctx *gin.Context) {
	restaurants, err := c.service.ListRestaurants(ctx.Request.Context())
	if err != nil {
		respondWithError(ctx, c.metrics, err)
		return
	}
	ctx.JSON(http.StatusOK, models.NewRestaurantResponses(restaurants))
}

// GetRestaurantByID godoc
// @Summary Get restaurant by ID
// @Description Get a restaurant with its restaurant pizzas, each with the pizza expanded
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} models.RestaurantDetailResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants/{id} [get]
func (c *restaurantController) GetRestaurantByID(ctx *gin.Context) {
	id, err := restaurantIDParam(ctx)
	if err != nil {
		respondWithError(ctx, c.metrics, err)
		return
	}

	restaurant, err := c.service.GetRestaurant(ctx.Request.Context(), id)
	if err != nil {
		respondWithError(ctx, c.metrics, err)
		return
	}
	ctx.JSON(http.StatusOK, models.NewRestaurantDetailResponse(restaurant))
}

// DeleteRestaurant godoc
// @Summary Delete a restaurant
// @Description Delete a restaurant and every restaurant pizza that belongs to it
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants/{id} [delete]
func (c *restaurantController) DeleteRestaurant(ctx *gin.Context) {
	id, err := restaurantIDParam(ctx)
	if err != nil {
		respondWithError(ctx, c.metrics, err)
		return
	}

	if err := c.service.DeleteRestaurant(ctx.Request.Context(), id); err != nil {
		respondWithError(ctx, c.metrics, err)
		return
	}
	c.metrics.RestaurantDeleted()
	ctx.Status(http.StatusNoContent)
}
