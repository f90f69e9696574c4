package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Title    string          `gorm:"size:100;index;not null" json:"title"`
	Price    decimal.Decimal `gorm:"type:decimal(6,2)" json:"price"`
	Featured bool            `gorm:"index" json:"featured"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"`

	// referencing rows block deletion (protect semantics)
	CartItems  []CartItem  `json:"-"`
	OrderItems []OrderItem `json:"-"`
}
