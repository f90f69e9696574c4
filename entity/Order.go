package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	// assigned post-creation, nullable until then
	DeliveryCrewID *uint `gorm:"index" json:"deliveryCrewId"`
	DeliveryCrew   *User `gorm:"foreignKey:DeliveryCrewID" json:"-"`

	Total  decimal.Decimal `gorm:"type:decimal(6,2)" json:"total"`
	Status bool            `gorm:"index" json:"status"`
	Date   time.Time       `gorm:"index" json:"date"`

	OrderItems []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
