package repository

import (
	"github.com/ahmedxgouda/LittleLemon/entity"
	"gorm.io/gorm"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByUsername(username string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Exists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.User{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// GroupsOf is the identity/role provider query: the caller's group rows.
func (r *UserRepository) GroupsOf(userID uint) ([]entity.Group, error) {
	var u entity.User
	u.ID = userID
	var groups []entity.Group
	if err := r.DB.Model(&u).Association("Groups").Find(&groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *UserRepository) UsersInGroup(name string) ([]entity.User, error) {
	var g entity.Group
	if err := r.DB.Where("name = ?", name).First(&g).Error; err != nil {
		return nil, err
	}
	var users []entity.User
	if err := r.DB.Model(&g).Association("Users").Find(&users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) AddToGroup(user *entity.User, groupName string) error {
	var g entity.Group
	if err := r.DB.Where("name = ?", groupName).First(&g).Error; err != nil {
		return err
	}
	return r.DB.Model(user).Association("Groups").Append(&g)
}

func (r *UserRepository) RemoveFromGroup(user *entity.User, groupName string) error {
	var g entity.Group
	if err := r.DB.Where("name = ?", groupName).First(&g).Error; err != nil {
		return err
	}
	return r.DB.Model(user).Association("Groups").Delete(&g)
}

func (r *UserRepository) InGroup(userID uint, groupName string) (bool, error) {
	var cnt int64
	err := r.DB.Table("user_groups").
		Joins("JOIN groups g ON g.id = user_groups.group_id").
		Where("user_groups.user_id = ? AND g.name = ?", userID, groupName).
		Count(&cnt).Error
	return cnt > 0, err
}
