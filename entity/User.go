package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `json:"email"`
	Password string `json:"-"`

	// role groups; resolved once per request, never read from token claims
	Groups []Group `gorm:"many2many:user_groups;" json:"-"`

	Orders         []Order    `gorm:"foreignKey:UserID" json:"-"`
	AssignedOrders []Order    `gorm:"foreignKey:DeliveryCrewID" json:"-"`
	CartItems      []CartItem `json:"-"`
}
