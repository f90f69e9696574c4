package repository

import (
	"github.com/ahmedxgouda/LittleLemon/entity"
	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

func (r *CartRepository) ItemsByUser(userID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := r.DB.Where("user_id = ?", userID).
		Preload("MenuItem").
		Preload("MenuItem.Category").
		Order("id").
		Find(&items).Error
	return items, err
}

// ItemsByUserTx reads inside the order-creation transaction so the loser of a
// concurrent double-submit observes the already-cleared cart.
func (r *CartRepository) ItemsByUserTx(tx *gorm.DB, userID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := tx.Where("user_id = ?", userID).Order("id").Find(&items).Error
	return items, err
}

func (r *CartRepository) GetItem(itemID uint) (*entity.CartItem, error) {
	var it entity.CartItem
	if err := r.DB.First(&it, itemID).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *CartRepository) CountByUserAndMenuItem(userID, menuItemID uint) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.CartItem{}).
		Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).
		Count(&cnt).Error
	return cnt, err
}

func (r *CartRepository) Insert(tx *gorm.DB, item *entity.CartItem) error {
	return tx.Create(item).Error
}

// Cart rows are consumed, not archived: hard delete, or the soft-deleted row
// would still occupy the (user, menuitem) unique index.
func (r *CartRepository) DeleteItem(tx *gorm.DB, itemID uint) error {
	return tx.Unscoped().Delete(&entity.CartItem{}, itemID).Error
}

func (r *CartRepository) ClearUser(tx *gorm.DB, userID uint) error {
	return tx.Unscoped().Where("user_id = ?", userID).Delete(&entity.CartItem{}).Error
}
