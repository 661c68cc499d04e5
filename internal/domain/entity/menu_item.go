package entity

import "encoding/json"

// MenuItem is a catalog entry. The catalog is read-only from the API's
// perspective; it is seeded at startup and maintained directly in the database.
type MenuItem struct {
	ItemID int64  `gorm:"primaryKey;autoIncrement;column:item_id" json:"item_id"`
	Name   string `gorm:"size:255;not null" json:"name"`
	Price  int64  `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (m MenuItem) MarshalJSON() ([]byte, error) {
	type Alias MenuItem
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(m),
		Price: float64(m.Price) / 100,
	})
}

// TableName returns the table name for the MenuItem model
func (MenuItem) TableName() string {
	return "menu_items"
}
