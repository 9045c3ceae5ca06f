//go:build integration

package services

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/franciscosanchezn/restaurant-pizzas-api/internal/database"
	"github.com/franciscosanchezn/restaurant-pizzas-api/internal/models"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var postgresURI string

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not construct docker pool: %v\n", err)
		os.Exit(1)
	}
	if err := pool.Client.Ping(); err != nil {
		fmt.Fprintf(os.Stderr, "could not connect to docker: %v\n", err)
		os.Exit(1)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=pizzas",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=pizzas_test",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not start postgres: %v\n", err)
		os.Exit(1)
	}
	_ = resource.Expire(120)

	postgresURI = fmt.Sprintf("postgres://pizzas:secret@%s/pizzas_test?sslmode=disable", resource.GetHostPort("5432/tcp"))

	err = pool.Retry(func() error {
		cfg, err := database.ParseDatabaseURI(postgresURI)
		if err != nil {
			return err
		}
		cfg.MaxRetries = 1
		db, err := database.InitDatabase(cfg)
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	})
	if err != nil {
		_ = pool.Purge(resource)
		fmt.Fprintf(os.Stderr, "postgres never became ready: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	if err := pool.Purge(resource); err != nil {
		fmt.Fprintf(os.Stderr, "could not purge postgres: %v\n", err)
	}
	os.Exit(code)
}

func setupPostgres(t *testing.T) *gorm.DB {
	cfg, err := database.ParseDatabaseURI(postgresURI)
	require.NoError(t, err)
	cfg.MaxRetries = 1

	db, err := database.InitDatabase(cfg)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, db.Exec("TRUNCATE restaurant_pizzas, restaurants, pizzas RESTART IDENTITY CASCADE").Error)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestPostgresCreateAndCascade(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	restaurant, err := NewRestaurantService(db).CreateRestaurant(ctx, models.Restaurant{Name: "Dominion Pizza", Address: "Maple Ave"})
	require.NoError(t, err)
	pizza, err := NewPizzaService(db).CreatePizza(ctx, models.Pizza{Name: "Cheese", Ingredients: "Dough, Tomato Sauce, Cheese"})
	require.NoError(t, err)

	prices := NewRestaurantPizzaService(db)
	created, err := prices.CreateRestaurantPizza(ctx, models.RestaurantPizza{Price: 5, PizzaID: pizza.ID, RestaurantID: restaurant.ID})
	require.NoError(t, err)
	assert.Equal(t, 5, created.Price)

	detail, err := NewRestaurantService(db).GetRestaurant(ctx, restaurant.ID)
	require.NoError(t, err)
	require.Len(t, detail.RestaurantPizzas, 1)
	assert.Equal(t, "Cheese", detail.RestaurantPizzas[0].Pizza.Name)

	require.NoError(t, NewRestaurantService(db).DeleteRestaurant(ctx, restaurant.ID))

	var remaining int64
	require.NoError(t, db.Model(&models.RestaurantPizza{}).Count(&remaining).Error)
	assert.Zero(t, remaining)
}

func TestPostgresForeignKeyViolationIsValidationError(t *testing.T) {
	db := setupPostgres(t)

	// Bypass the service's existence checks so the constraint itself fires
	err := db.Omit("Pizza").Create(&models.RestaurantPizza{Price: 10, PizzaID: 404, RestaurantID: 404}).Error
	require.Error(t, err)

	verr, ok := translateCreateError(err).(*ValidationError)
	require.True(t, ok, "expected *ValidationError, got %T", translateCreateError(err))
	assert.Equal(t, []string{MsgInvalidReference}, verr.Messages)
}
