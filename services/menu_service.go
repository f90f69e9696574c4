package services

import (
	"errors"

	"github.com/ahmedxgouda/LittleLemon/entity"
	"github.com/ahmedxgouda/LittleLemon/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(mr *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: mr}
}

// ---------------- Categories ----------------

type CategoryIn struct {
	Title string `json:"title" binding:"required"`
	Slug  string `json:"slug"`
}

func (s *MenuService) ListCategories() ([]entity.Category, error) {
	return s.Repo.ListCategories()
}

func (s *MenuService) GetCategory(id uint) (*entity.Category, error) {
	c, err := s.Repo.GetCategory(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return c, err
}

func (s *MenuService) CreateCategory(in *CategoryIn) (*entity.Category, error) {
	c := &entity.Category{Title: in.Title, Slug: in.Slug}
	if err := s.Repo.CreateCategory(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *MenuService) UpdateCategory(id uint, in *CategoryIn) (*entity.Category, error) {
	c, err := s.GetCategory(id)
	if err != nil {
		return nil, err
	}
	c.Title = in.Title
	c.Slug = in.Slug
	if err := s.Repo.SaveCategory(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *MenuService) DeleteCategory(id uint) error {
	if _, err := s.GetCategory(id); err != nil {
		return err
	}
	cnt, err := s.Repo.CountCategoryItems(id)
	if err != nil {
		return err
	}
	if cnt > 0 {
		return ErrCategoryInUse
	}
	return s.Repo.DeleteCategory(id)
}

// ---------------- Menu items ----------------

type MenuItemIn struct {
	Title      string          `json:"title" binding:"required"`
	Price      decimal.Decimal `json:"price"`
	Featured   bool            `json:"featured"`
	CategoryID uint            `json:"categoryId" binding:"required"`
}

func (s *MenuService) ListMenuItems() ([]entity.MenuItem, error) {
	return s.Repo.ListMenuItems()
}

func (s *MenuService) GetMenuItem(id uint) (*entity.MenuItem, error) {
	m, err := s.Repo.GetMenuItem(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return m, err
}

func (s *MenuService) CreateMenuItem(in *MenuItemIn) (*entity.MenuItem, error) {
	if in.Price.IsNegative() {
		return nil, ErrNegativePrice
	}
	ok, err := s.Repo.CategoryExists(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	m := &entity.MenuItem{
		Title:      in.Title,
		Price:      in.Price,
		Featured:   in.Featured,
		CategoryID: in.CategoryID,
	}
	if err := s.Repo.CreateMenuItem(m); err != nil {
		return nil, err
	}
	return m, nil
}

// UpdateMenuItem edits the live menu row only; cart and order snapshots keep
// the price they were written with.
func (s *MenuService) UpdateMenuItem(id uint, in *MenuItemIn) (*entity.MenuItem, error) {
	if in.Price.IsNegative() {
		return nil, ErrNegativePrice
	}
	m, err := s.GetMenuItem(id)
	if err != nil {
		return nil, err
	}
	ok, err := s.Repo.CategoryExists(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	m.Title = in.Title
	m.Price = in.Price
	m.Featured = in.Featured
	m.CategoryID = in.CategoryID
	if err := s.Repo.SaveMenuItem(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MenuService) DeleteMenuItem(id uint) error {
	if _, err := s.GetMenuItem(id); err != nil {
		return err
	}
	cnt, err := s.Repo.CountReferences(id)
	if err != nil {
		return err
	}
	if cnt > 0 {
		return ErrMenuItemInUse
	}
	return s.Repo.DeleteMenuItem(id)
}
