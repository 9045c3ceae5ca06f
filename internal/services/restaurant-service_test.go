package services

import (
	"context"
	"testing"

	"github.com/franciscosanchezn/restaurant-pizzas-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRestaurants(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	restaurants, err := f.restaurants.ListRestaurants(ctx)
	require.NoError(t, err)
	assert.Empty(t, restaurants)

	first := f.restaurant(t, "Dominion Pizza", "Maple Ave")
	second := f.restaurant(t, "Pizza Palace", "Elm St")

	restaurants, err = f.restaurants.ListRestaurants(ctx)
	require.NoError(t, err)
	require.Len(t, restaurants, 2)
	assert.Equal(t, first.ID, restaurants[0].ID)
	assert.Equal(t, second.ID, restaurants[1].ID)
	assert.Nil(t, restaurants[0].RestaurantPizzas)
}

func TestGetRestaurant(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	restaurant := f.restaurant(t, "Dominion Pizza", "Maple Ave")
	cheese := f.pizza(t, "Cheese", "Dough, Tomato Sauce, Cheese")
	pepperoni := f.pizza(t, "Pepperoni", "Dough, Tomato Sauce, Cheese, Pepperoni")

	_, err := f.prices.CreateRestaurantPizza(ctx, models.RestaurantPizza{Price: 5, PizzaID: cheese.ID, RestaurantID: restaurant.ID})
	require.NoError(t, err)
	_, err = f.prices.CreateRestaurantPizza(ctx, models.RestaurantPizza{Price: 9, PizzaID: pepperoni.ID, RestaurantID: restaurant.ID})
	require.NoError(t, err)

	got, err := f.restaurants.GetRestaurant(ctx, restaurant.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dominion Pizza", got.Name)
	require.Len(t, got.RestaurantPizzas, 2)

	require.NotNil(t, got.RestaurantPizzas[0].Pizza)
	assert.Equal(t, "Cheese", got.RestaurantPizzas[0].Pizza.Name)
	assert.Equal(t, 5, got.RestaurantPizzas[0].Price)

	require.NotNil(t, got.RestaurantPizzas[1].Pizza)
	assert.Equal(t, "Pepperoni", got.RestaurantPizzas[1].Pizza.Name)
	assert.Equal(t, 9, got.RestaurantPizzas[1].Price)
}

func TestGetRestaurantNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.restaurants.GetRestaurant(context.Background(), 42)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestDeleteRestaurant(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	doomed := f.restaurant(t, "Dominion Pizza", "Maple Ave")
	kept := f.restaurant(t, "Pizza Palace", "Elm St")
	cheese := f.pizza(t, "Cheese", "Dough, Tomato Sauce, Cheese")

	for _, id := range []uint{doomed.ID, doomed.ID, kept.ID} {
		_, err := f.prices.CreateRestaurantPizza(ctx, models.RestaurantPizza{Price: 10, PizzaID: cheese.ID, RestaurantID: id})
		require.NoError(t, err)
	}

	require.NoError(t, f.restaurants.DeleteRestaurant(ctx, doomed.ID))

	_, err := f.restaurants.GetRestaurant(ctx, doomed.ID)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)

	var orphans int64
	f.db.Model(&models.RestaurantPizza{}).Where("restaurant_id = ?", doomed.ID).Count(&orphans)
	assert.Zero(t, orphans)

	assert.EqualValues(t, 1, f.count(t, &models.RestaurantPizza{}))
	assert.EqualValues(t, 1, f.count(t, &models.Pizza{}), "pizzas are never deleted")
}

func TestDeleteRestaurantNotFound(t *testing.T) {
	f := newFixture(t)

	err := f.restaurants.DeleteRestaurant(context.Background(), 7)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}
