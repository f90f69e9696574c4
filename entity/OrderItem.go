package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItem is the snapshot copy of a CartItem taken at order creation.
type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"uniqueIndex:idx_order_menuitem" json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `gorm:"uniqueIndex:idx_order_menuitem" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(6,2)" json:"unitPrice"`
	Price     decimal.Decimal `gorm:"type:decimal(6,2)" json:"price"`
}
