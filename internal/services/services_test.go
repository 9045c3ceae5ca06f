package services

import (
	"context"
	"testing"

	"github.com/franciscosanchezn/restaurant-pizzas-api/internal/database"
	"github.com/franciscosanchezn/restaurant-pizzas-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.InitDatabase(database.DatabaseConfig{
		Driver:     database.DriverSQLite,
		Path:       ":memory:",
		MaxRetries: 1,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

type fixture struct {
	db          *gorm.DB
	restaurants RestaurantService
	pizzas      PizzaService
	prices      RestaurantPizzaService
}

func newFixture(t *testing.T) fixture {
	db := setupTestDB(t)
	return fixture{
		db:          db,
		restaurants: NewRestaurantService(db),
		pizzas:      NewPizzaService(db),
		prices:      NewRestaurantPizzaService(db),
	}
}

func (f fixture) restaurant(t *testing.T, name, address string) models.Restaurant {
	r, err := f.restaurants.CreateRestaurant(context.Background(), models.Restaurant{Name: name, Address: address})
	require.NoError(t, err)
	return r
}

func (f fixture) pizza(t *testing.T, name, ingredients string) models.Pizza {
	p, err := f.pizzas.CreatePizza(context.Background(), models.Pizza{Name: name, Ingredients: ingredients})
	require.NoError(t, err)
	return p
}

func (f fixture) count(t *testing.T, model interface{}) int64 {
	var n int64
	require.NoError(t, f.db.Model(model).Count(&n).Error)
	return n
}
