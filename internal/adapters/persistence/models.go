package persistence

import (
	"time"
)

// SavedRecipeModel represents the saved_recipes table
type SavedRecipeModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	Product   string    `gorm:"column:product;not null;index"`
	Mixers    string    `gorm:"column:mixers;type:text;not null"` // JSON array as text
	Notes     string    `gorm:"column:notes;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;not null;index"`
}

func (SavedRecipeModel) TableName() string {
	return "saved_recipes"
}

// DealerTransactionModel represents the dealer_transactions table
type DealerTransactionModel struct {
	ID       string    `gorm:"column:id;primaryKey"`
	Dealer   string    `gorm:"column:dealer;not null;index"`
	Product  string    `gorm:"column:product;not null"`
	Quantity int       `gorm:"column:quantity;not null"`
	Price    float64   `gorm:"column:price;not null"`
	Date     time.Time `gorm:"column:date;not null"`
}

func (DealerTransactionModel) TableName() string {
	return "dealer_transactions"
}
