package models

// RestaurantResponse is the restaurant shape used by listings: id, name and address only
type RestaurantResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// RestaurantDetailResponse expands a restaurant with its prices and the pizza behind each one
type RestaurantDetailResponse struct {
	ID               uint                            `json:"id"`
	Name             string                          `json:"name"`
	Address          string                          `json:"address"`
	RestaurantPizzas []RestaurantPizzaDetailResponse `json:"restaurant_pizzas"`
}

// PizzaResponse is the pizza shape: id, name and ingredients
type PizzaResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
}

// RestaurantPizzaResponse is the default RestaurantPizza shape
type RestaurantPizzaResponse struct {
	ID           uint `json:"id"`
	Price        int  `json:"price"`
	PizzaID      uint `json:"pizza_id"`
	RestaurantID uint `json:"restaurant_id"`
}

// RestaurantPizzaDetailResponse is a RestaurantPizza with its pizza expanded
type RestaurantPizzaDetailResponse struct {
	ID           uint          `json:"id"`
	Price        int           `json:"price"`
	PizzaID      uint          `json:"pizza_id"`
	RestaurantID uint          `json:"restaurant_id"`
	Pizza        PizzaResponse `json:"pizza"`
}

func NewRestaurantResponse(r Restaurant) RestaurantResponse {
	return RestaurantResponse{ID: r.ID, Name: r.Name, Address: r.Address}
}

// NewRestaurantResponses serializes a listing. It never returns nil so an
// empty store renders as [] rather than null.
func NewRestaurantResponses(restaurants []Restaurant) []RestaurantResponse {
	out := make([]RestaurantResponse, 0, len(restaurants))
	for _, r := range restaurants {
		out = append(out, NewRestaurantResponse(r))
	}
	return out
}

// NewRestaurantDetailResponse expects RestaurantPizzas and their Pizza to be preloaded
func NewRestaurantDetailResponse(r Restaurant) RestaurantDetailResponse {
	items := make([]RestaurantPizzaDetailResponse, 0, len(r.RestaurantPizzas))
	for _, rp := range r.RestaurantPizzas {
		item := RestaurantPizzaDetailResponse{
			ID:           rp.ID,
			Price:        rp.Price,
			PizzaID:      rp.PizzaID,
			RestaurantID: rp.RestaurantID,
		}
		if rp.Pizza != nil {
			item.Pizza = NewPizzaResponse(*rp.Pizza)
		}
		items = append(items, item)
	}
	return RestaurantDetailResponse{
		ID:               r.ID,
		Name:             r.Name,
		Address:          r.Address,
		RestaurantPizzas: items,
	}
}

func NewPizzaResponse(p Pizza) PizzaResponse {
	return PizzaResponse{ID: p.ID, Name: p.Name, Ingredients: p.Ingredients}
}

func NewPizzaResponses(pizzas []Pizza) []PizzaResponse {
	out := make([]PizzaResponse, 0, len(pizzas))
	for _, p := range pizzas {
		out = append(out, NewPizzaResponse(p))
	}
	return out
}

func NewRestaurantPizzaResponse(rp RestaurantPizza) RestaurantPizzaResponse {
	return RestaurantPizzaResponse{
		ID:           rp.ID,
		Price:        rp.Price,
		PizzaID:      rp.PizzaID,
		RestaurantID: rp.RestaurantID,
	}
}
