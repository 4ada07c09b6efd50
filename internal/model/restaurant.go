package model

// Restaurant is one row of the restaurant table. Field order is the order
// fields appear in JSON responses.
type Restaurant struct {
	Name         string `json:"name" db:"name"`
	District     string `json:"district" db:"district"`
	Summary      string `json:"summary" db:"summary"`
	Introduction string `json:"introduction" db:"introduction"`
	OpenTime     string `json:"open_time" db:"open_time"`
	Address      string `json:"address" db:"address"`
}

// RestaurantFields lists the source fields kept from each dataset record.
var RestaurantFields = []string{
	"name",
	"district",
	"summary",
	"introduction",
	"open_time",
	"address",
}
