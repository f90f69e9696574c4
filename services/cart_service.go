package services

import (
	"errors"

	"github.com/ahmedxgouda/LittleLemon/entity"
	"github.com/ahmedxgouda/LittleLemon/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr}
}

type AddCartItemIn struct {
	MenuItemID uint             `json:"menuItemId" binding:"required"`
	Quantity   int              `json:"quantity" binding:"required"`
	UnitPrice  decimal.Decimal  `json:"unitPrice"`
	Price      *decimal.Decimal `json:"price"` // optional consistency check
}

// AddItem pins the snapshot price to the current menu price and enforces the
// one-row-per-(user, menuitem) invariant.
func (s *CartService) AddItem(userID uint, in *AddCartItemIn) (*entity.CartItem, error) {
	if in.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if in.UnitPrice.IsNegative() {
		return nil, ErrNegativePrice
	}

	m, err := s.MenuRepo.GetMenuItem(in.MenuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !in.UnitPrice.Equal(m.Price) {
		return nil, ErrPriceMismatch
	}

	computed := in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity)))
	if in.Price != nil && !in.Price.Equal(computed) {
		return nil, ErrPriceMismatch
	}

	cnt, err := s.CartRepo.CountByUserAndMenuItem(userID, in.MenuItemID)
	if err != nil {
		return nil, err
	}
	if cnt > 0 {
		return nil, ErrDuplicateCartItem
	}

	item := &entity.CartItem{
		UserID:     userID,
		MenuItemID: in.MenuItemID,
		Quantity:   in.Quantity,
		UnitPrice:  in.UnitPrice,
		Price:      computed,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.Insert(tx, item)
	})
	if err != nil {
		// the (user, menuitem) unique index catches a concurrent duplicate
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateCartItem
		}
		return nil, err
	}
	return item, nil
}

func (s *CartService) ListItems(userID uint) ([]entity.CartItem, error) {
	return s.CartRepo.ItemsByUser(userID)
}

func (s *CartService) RemoveItem(userID, itemID uint) error {
	item, err := s.CartRepo.GetItem(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if item.UserID != userID {
		return ErrForbidden
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.DeleteItem(tx, itemID)
	})
}

// Clear is idempotent: clearing an empty cart succeeds.
func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearUser(tx, userID)
	})
}
