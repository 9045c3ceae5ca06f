package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/franciscosanchezn/restaurant-pizzas-api/internal/models"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Messages for references that do not resolve
const (
	MsgPizzaDoesNotExist      = "pizza_id does not reference an existing pizza"
	MsgRestaurantDoesNotExist = "restaurant_id does not reference an existing restaurant"
	MsgInvalidReference       = "pizza_id and restaurant_id must reference existing records"
)

// RestaurantPizzaService provides methods to price pizzas at restaurants
type RestaurantPizzaService interface {
	// CreateRestaurantPizza validates and inserts a RestaurantPizza atomically.
	// Validation failures are returned as *ValidationError.
	CreateRestaurantPizza(ctx context.Context, rp models.RestaurantPizza) (models.RestaurantPizza, error)
}

type restaurantPizzaService struct {
	db *gorm.DB
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService
func NewRestaurantPizzaService(db *gorm.DB) RestaurantPizzaService {
	return &restaurantPizzaService{db: db}
}

func (s *restaurantPizzaService) CreateRestaurantPizza(ctx context.Context, rp models.RestaurantPizza) (models.RestaurantPizza, error) {
	// Price is checked before the references, matching the order a client sees errors in
	if err := rp.Validate(); err != nil {
		return models.RestaurantPizza{}, AsValidationError(err)
	}
	rp.ID = 0
	rp.Pizza = nil

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var messages []string
		exists, err := recordExists(tx, &models.Pizza{}, rp.PizzaID)
		if err != nil {
			return err
		}
		if !exists {
			messages = append(messages, MsgPizzaDoesNotExist)
		}
		exists, err = recordExists(tx, &models.Restaurant{}, rp.RestaurantID)
		if err != nil {
			return err
		}
		if !exists {
			messages = append(messages, MsgRestaurantDoesNotExist)
		}
		if len(messages) > 0 {
			return NewValidationError(messages...)
		}

		if err := tx.Omit(clause.Associations).Create(&rp).Error; err != nil {
			return translateCreateError(err)
		}
		return nil
	})
	if err != nil {
		return models.RestaurantPizza{}, err
	}
	return rp, nil
}

func recordExists(tx *gorm.DB, model interface{}, id uint) (bool, error) {
	if id == 0 {
		return false, nil
	}
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check reference %d: %w", id, err)
	}
	return count > 0, nil
}

// translateCreateError maps constraint failures raised by the store to ValidationError
func translateCreateError(err error) error {
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		return AsValidationError(err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.ForeignKeyViolation:
			return NewValidationError(MsgInvalidReference)
		case pgerrcode.NotNullViolation, pgerrcode.CheckViolation:
			return NewValidationError(pgErr.Message)
		}
	}

	if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
		return NewValidationError(MsgInvalidReference)
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return NewValidationError(MsgInvalidReference)
	}

	return fmt.Errorf("create restaurant pizza: %w", err)
}
