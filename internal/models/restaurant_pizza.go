package models

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"gorm.io/gorm"
)

// Price bounds for a RestaurantPizza, both inclusive
const (
	MinPrice = 1
	MaxPrice = 30
)

// ErrPriceOutOfRange is reported when a price falls outside [MinPrice, MaxPrice]
var ErrPriceOutOfRange = errors.New("must be between 1 and 30")

// PriceInRange validates a price, treating zero as out of range.
// ozzo's Min/Max skip empty values, so the bound check is done by hand.
var PriceInRange = validation.By(func(value interface{}) error {
	v, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}
	price, err := validation.ToInt(v)
	if err != nil {
		return err
	}
	if price < MinPrice || price > MaxPrice {
		return ErrPriceOutOfRange
	}
	return nil
})

// RestaurantPizza links a pizza to a restaurant at a given price
type RestaurantPizza struct {
	ID           uint   `gorm:"primaryKey"`
	Price        int    `gorm:"not null"`
	RestaurantID uint   `gorm:"not null;index"`
	PizzaID      uint   `gorm:"not null;index"`
	Pizza        *Pizza `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}

// Validate checks the fields a RestaurantPizza must satisfy before it is stored
func (rp RestaurantPizza) Validate() error {
	if err := validation.Validate(rp.Price, PriceInRange); err != nil {
		return validation.Errors{"price": err}
	}
	return nil
}

// BeforeSave rejects invalid rows no matter which code path writes them
func (rp *RestaurantPizza) BeforeSave(tx *gorm.DB) error {
	return rp.Validate()
}
