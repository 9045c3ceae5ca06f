package controllers

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/franciscosanchezn/restaurant-pizzas-api/internal/models"
)

// CreateRestaurantPizzaRequest is the body of POST /restaurant_pizzas.
// Pointers tell a missing field apart from a zero value.
type CreateRestaurantPizzaRequest struct {
	Price        *int  `json:"price"`
	PizzaID      *uint `json:"pizza_id"`
	RestaurantID *uint `json:"restaurant_id"`
}

// Validate checks presence of every field and the price bounds
func (req *CreateRestaurantPizzaRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Price, validation.NotNil, models.PriceInRange),
		validation.Field(&req.PizzaID, validation.NotNil),
		validation.Field(&req.RestaurantID, validation.NotNil),
	)
}

// Model converts a validated request into a RestaurantPizza
func (req *CreateRestaurantPizzaRequest) Model() models.RestaurantPizza {
	var rp models.RestaurantPizza
	if req.Price != nil {
		rp.Price = *req.Price
	}
	if req.PizzaID != nil {
		rp.PizzaID = *req.PizzaID
	}
	if req.RestaurantID != nil {
		rp.RestaurantID = *req.RestaurantID
	}
	return rp
}
