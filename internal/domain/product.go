package domain

import "time"

// Venue identifiers for the bar menus the journal autocompletes from.
const (
	VenueHannam    = "hannam"
	VenueChungmuro = "chungmuro"
)

// Product is a whiskey on one of the venue menus, used for name
// autocompletion when saving a record.
type Product struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Venue     string    `gorm:"type:text;not null;index:idx_products_venue" json:"venue"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for Product.
func (Product) TableName() string {
	return "products"
}
