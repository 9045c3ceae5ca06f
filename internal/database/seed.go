package database

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/restaurant-pizzas-api/internal/models"
	"gorm.io/gorm"
)

type seedPrice struct {
	restaurant int
	pizza      int
	price      int
}

var (
	seedRestaurants = []models.Restaurant{
		{Name: "Karen's Pizza Shack", Address: "address1"},
		{Name: "Sanjay's Pizza", Address: "address2"},
		{Name: "Kiki's Pizza", Address: "address3"},
	}

	seedPizzas = []models.Pizza{
		{Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"},
		{Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
		{Name: "Melanie", Ingredients: "Dough, Sauce, Ricotta, Red peppers, Mustard"},
	}

	// indexes into seedRestaurants and seedPizzas
	seedPrices = []seedPrice{
		{restaurant: 0, pizza: 0, price: 1},
		{restaurant: 1, pizza: 1, price: 4},
		{restaurant: 2, pizza: 2, price: 5},
		{restaurant: 0, pizza: 2, price: 12},
	}
)

// Seed inserts sample restaurants, pizzas and prices.
// With reset, existing rows are removed first; otherwise seeding is skipped
// when any restaurant or pizza already exists. It reports whether rows were inserted.
func Seed(ctx context.Context, db *gorm.DB, reset bool) (bool, error) {
	seeded := false
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if reset {
			log.Info("Clearing existing data before seeding")
			if err := clearTables(tx); err != nil {
				return err
			}
		} else {
			var restaurants, pizzas int64
			if err := tx.Model(&models.Restaurant{}).Count(&restaurants).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Pizza{}).Count(&pizzas).Error; err != nil {
				return err
			}
			if restaurants > 0 || pizzas > 0 {
				log.Info("Database already seeded with initial data")
				return nil
			}
		}

		log.Info("Seeding database with initial data")
		restaurants := append([]models.Restaurant(nil), seedRestaurants...)
		if err := tx.Create(&restaurants).Error; err != nil {
			return fmt.Errorf("failed to seed restaurants: %w", err)
		}
		pizzas := append([]models.Pizza(nil), seedPizzas...)
		if err := tx.Create(&pizzas).Error; err != nil {
			return fmt.Errorf("failed to seed pizzas: %w", err)
		}

		prices := make([]models.RestaurantPizza, 0, len(seedPrices))
		for _, p := range seedPrices {
			prices = append(prices, models.RestaurantPizza{
				Price:        p.price,
				RestaurantID: restaurants[p.restaurant].ID,
				PizzaID:      pizzas[p.pizza].ID,
			})
		}
		if err := tx.Create(&prices).Error; err != nil {
			return fmt.Errorf("failed to seed restaurant pizzas: %w", err)
		}

		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}
	if seeded {
		log.Info("Database seeded successfully")
	}
	return seeded, nil
}

// clearTables deletes children before parents so foreign keys never dangle
func clearTables(tx *gorm.DB) error {
	for _, model := range []interface{}{&models.RestaurantPizza{}, &models.Restaurant{}, &models.Pizza{}} {
		if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
			return fmt.Errorf("failed to clear table: %w", err)
		}
	}
	return nil
}
