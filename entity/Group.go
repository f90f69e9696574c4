package entity

import (
	"gorm.io/gorm"
)

type Group struct {
	gorm.Model
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`

	Users []User `gorm:"many2many:user_groups;" json:"-"`
}
