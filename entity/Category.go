package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Title string `gorm:"size:100;index;not null" json:"title"`
	Slug  string `gorm:"size:100" json:"slug"`

	MenuItems []MenuItem `gorm:"foreignKey:CategoryID" json:"-"`
}
