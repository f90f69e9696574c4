package services

import (
	"testing"
	"time"

	"github.com/ahmedxgouda/LittleLemon/entity"
	"github.com/ahmedxgouda/LittleLemon/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Group{},
		&entity.Category{}, &entity.MenuItem{},
		&entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	))
	for _, name := range []string{entity.GroupManager, entity.GroupDeliveryCrew} {
		require.NoError(t, db.Create(&entity.Group{Name: name}).Error)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string, groups ...string) *entity.User {
	t.Helper()
	u := &entity.User{Username: username, Password: "x"}
	require.NoError(t, db.Create(u).Error)
	for _, name := range groups {
		var g entity.Group
		require.NoError(t, db.Where("name = ?", name).First(&g).Error)
		require.NoError(t, db.Model(u).Association("Groups").Append(&g))
	}
	return u
}

func seedMenuItem(t *testing.T, db *gorm.DB, title, price string) *entity.MenuItem {
	t.Helper()
	cat := &entity.Category{Title: "Mains", Slug: "mains"}
	require.NoError(t, db.FirstOrCreate(cat, entity.Category{Title: "Mains"}).Error)
	m := &entity.MenuItem{
		Title:      title,
		Price:      decimal.RequireFromString(price),
		CategoryID: cat.ID,
	}
	require.NoError(t, db.Create(m).Error)
	return m
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewMenuRepository(db))
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewUserRepository(db),
		nil,
	)
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func tomorrow() time.Time { return time.Now().AddDate(0, 0, 1) }
func yesterday() time.Time { return time.Now().AddDate(0, 0, -1) }
