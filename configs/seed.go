package configs

import (
	"log"

	"github.com/ahmedxgouda/LittleLemon/entity"
	"golang.org/x/crypto/bcrypt"
)

// role groups must exist before any request resolves roles
func SeedGroups() error {
	db := DB()
	for _, name := range []string{entity.GroupManager, entity.GroupDeliveryCrew} {
		var count int64
		if err := db.Model(&entity.Group{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := db.Create(&entity.Group{Name: name}).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// first manager account
func SeedAdmin(username, password string) error {
	db := DB()
	if username == "" || password == "" {
		log.Println("skip seeding admin: missing ADMIN_USERNAME/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", username)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	admin := entity.User{Username: username, Password: string(hash)}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	var managers entity.Group
	if err := db.Where("name = ?", entity.GroupManager).First(&managers).Error; err != nil {
		return err
	}
	return db.Model(&admin).Association("Groups").Append(&managers)
}
