package entity

// Customer is created implicitly during order creation or referenced by id.
// No update or delete path exists.
type Customer struct {
	CustomerID int64  `gorm:"primaryKey;autoIncrement;column:customer_id" json:"customer_id"`
	Name       string `gorm:"size:255;not null" json:"name"`
	Phone      string `gorm:"size:50" json:"phone"`
	Address    string `gorm:"type:text" json:"address"`

	// Relationships
	Orders []Order `gorm:"foreignKey:CustomerID" json:"-"`
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
