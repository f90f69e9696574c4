package repository

import (
	"github.com/ahmedxgouda/LittleLemon/entity"
	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("OrderItems").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListAll() ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Preload("OrderItems").Order("id DESC").Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListByUser(userID uint) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Preload("OrderItems").Where("user_id = ?", userID).Order("id DESC").Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListByCrew(crewID uint) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Preload("OrderItems").Where("delivery_crew_id = ?", crewID).Order("id DESC").Find(&out).Error
	return out, err
}

func (r *OrderRepository) UpdateOrder(tx *gorm.DB, orderID uint, updates map[string]any) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).Updates(updates).Error
}

func (r *OrderRepository) DeleteOrder(tx *gorm.DB, orderID uint) error {
	return tx.Unscoped().Delete(&entity.Order{}, orderID).Error
}

// ---------------- Order items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).Order("id").Find(&items).Error
	return items, err
}

// Hard delete for the same reason as cart rows: a replaced item set must free
// the (order, menuitem) unique index immediately.
func (r *OrderRepository) DeleteOrderItems(tx *gorm.DB, orderID uint) error {
	return tx.Unscoped().Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error
}

func (r *OrderRepository) CountItems(orderID uint) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.OrderItem{}).Where("order_id = ?", orderID).Count(&cnt).Error
	return cnt, err
}
