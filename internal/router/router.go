package router

import (
	"net/http"

	_ "github.com/franciscosanchezn/restaurant-pizzas-api/docs" // Import generated docs
	"github.com/franciscosanchezn/restaurant-pizzas-api/internal/controllers"
	"github.com/franciscosanchezn/restaurant-pizzas-api/internal/metrics"
	"github.com/franciscosanchezn/restaurant-pizzas-api/internal/middleware"
	"github.com/franciscosanchezn/restaurant-pizzas-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizzas-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// ServiceName identifies this API in health checks and metrics
const ServiceName = "restaurant-pizzas-api"

// Dependencies holds everything the router needs to build its handlers
type Dependencies struct {
	DB                 *gorm.DB
	Logger             *logrus.Logger
	Metrics            *metrics.Metrics
	CORSAllowedOrigins []string
}

// New builds the Gin engine with middlewares and every route mounted
func New(deps Dependencies) *gin.Engine {
	if deps.Logger == nil {
		deps.Logger = logrus.StandardLogger()
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(deps.Logger),
		middleware.Metrics(deps.Metrics),
		middleware.CORS(deps.CORSAllowedOrigins),
	)

	setupRoutes(router, deps)
	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine, deps Dependencies) {
	restaurantController := controllers.NewRestaurantController(services.NewRestaurantService(deps.DB), deps.Metrics)
	pizzaController := controllers.NewPizzaController(services.NewPizzaService(deps.DB), deps.Metrics)
	restaurantPizzaController := controllers.NewRestaurantPizzaController(services.NewRestaurantPizzaService(deps.DB), deps.Metrics)
	healthController := controllers.NewHealthController(deps.DB, ServiceName)

	router.GET("/", controllers.Index)
	router.GET("/health", healthController.HealthCheck)

	router.GET("/restaurants", restaurantController.GetAllRestaurants)
	router.GET("/restaurants/:id", restaurantController.GetRestaurantByID)
	router.DELETE("/restaurants/:id", restaurantController.DeleteRestaurant)

	router.GET("/pizzas", pizzaController.GetAllPizzas)

	router.POST("/restaurant_pizzas", restaurantPizzaController.CreateRestaurantPizza)

	router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.NewErrorResponse(models.MsgNotFound))
	})
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, models.NewErrorResponse(models.MsgMethodNotAllowed))
	})
}
