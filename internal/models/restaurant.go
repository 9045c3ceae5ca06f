package models

// Restaurant represents a restaurant and the pizzas it offers.
// Deleting a restaurant removes its RestaurantPizza rows as well.
type Restaurant struct {
	ID               uint              `gorm:"primaryKey"`
	Name             string            `gorm:"not null"`
	Address          string            `gorm:"not null"`
	RestaurantPizzas []RestaurantPizza `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
