package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartItem is a point-in-time price snapshot: UnitPrice is pinned to the menu
// price at insert and never follows later menu edits.
type CartItem struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex:idx_cart_user_menuitem" json:"userId"`
	User   User `json:"-"`

	MenuItemID uint     `gorm:"uniqueIndex:idx_cart_user_menuitem" json:"menuItemId"`
	MenuItem   MenuItem `json:"menuItem"`

	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(6,2)" json:"unitPrice"`
	Price     decimal.Decimal `gorm:"type:decimal(6,2)" json:"price"`
}
