package repository

import (
	"github.com/ahmedxgouda/LittleLemon/entity"
	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

// ---------------- Categories ----------------

func (r *MenuRepository) ListCategories() ([]entity.Category, error) {
	var out []entity.Category
	err := r.DB.Order("title").Find(&out).Error
	return out, err
}

func (r *MenuRepository) GetCategory(id uint) (*entity.Category, error) {
	var c entity.Category
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *MenuRepository) CreateCategory(c *entity.Category) error {
	return r.DB.Create(c).Error
}

func (r *MenuRepository) SaveCategory(c *entity.Category) error {
	return r.DB.Save(c).Error
}

func (r *MenuRepository) DeleteCategory(id uint) error {
	return r.DB.Delete(&entity.Category{}, id).Error
}

func (r *MenuRepository) CategoryExists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Category{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *MenuRepository) CountCategoryItems(categoryID uint) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.MenuItem{}).Where("category_id = ?", categoryID).Count(&cnt).Error
	return cnt, err
}

// ---------------- Menu items ----------------

func (r *MenuRepository) ListMenuItems() ([]entity.MenuItem, error) {
	var out []entity.MenuItem
	err := r.DB.Preload("Category").Order("title").Find(&out).Error
	return out, err
}

func (r *MenuRepository) GetMenuItem(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.Preload("Category").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) CreateMenuItem(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) SaveMenuItem(m *entity.MenuItem) error {
	return r.DB.Save(m).Error
}

func (r *MenuRepository) DeleteMenuItem(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}

// CountReferences backs the protect-on-delete rule: a menu item referenced by
// any cart or order row must not be removed.
func (r *MenuRepository) CountReferences(menuItemID uint) (int64, error) {
	var carts, orders int64
	if err := r.DB.Model(&entity.CartItem{}).Where("menu_item_id = ?", menuItemID).Count(&carts).Error; err != nil {
		return 0, err
	}
	if err := r.DB.Model(&entity.OrderItem{}).Where("menu_item_id = ?", menuItemID).Count(&orders).Error; err != nil {
		return 0, err
	}
	return carts + orders, nil
}
