package services

import (
	"testing"

	"github.com/ahmedxgouda/LittleLemon/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItemComputesExactPrice(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "alice")
	item := seedMenuItem(t, db, "Bruschetta", "12.50")

	got, err := svc.AddItem(user.ID, &AddCartItemIn{
		MenuItemID: item.ID,
		Quantity:   2,
		UnitPrice:  dec("12.50"),
	})
	require.NoError(t, err)
	assert.True(t, got.Price.Equal(dec("25.00")), "price = %s", got.Price)

	// no float rounding on awkward decimals either
	item2 := seedMenuItem(t, db, "Side Salad", "0.10")
	got2, err := svc.AddItem(user.ID, &AddCartItemIn{
		MenuItemID: item2.ID,
		Quantity:   3,
		UnitPrice:  dec("0.10"),
	})
	require.NoError(t, err)
	assert.True(t, got2.Price.Equal(dec("0.30")), "price = %s", got2.Price)
}

func TestAddItemRejectsBadQuantityAndPrice(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "alice")
	item := seedMenuItem(t, db, "Bruschetta", "12.50")

	_, err := svc.AddItem(user.ID, &AddCartItemIn{MenuItemID: item.ID, Quantity: 0, UnitPrice: dec("12.50")})
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = svc.AddItem(user.ID, &AddCartItemIn{MenuItemID: item.ID, Quantity: 1, UnitPrice: dec("-1.00")})
	assert.ErrorIs(t, err, ErrNegativePrice)
}

func TestAddItemPinsUnitPriceToMenu(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "alice")
	item := seedMenuItem(t, db, "Bruschetta", "12.50")

	_, err := svc.AddItem(user.ID, &AddCartItemIn{MenuItemID: item.ID, Quantity: 1, UnitPrice: dec("11.00")})
	assert.ErrorIs(t, err, ErrPriceMismatch)

	// declared line price must equal quantity x unit price
	wrong := dec("20.00")
	_, err = svc.AddItem(user.ID, &AddCartItemIn{
		MenuItemID: item.ID, Quantity: 2, UnitPrice: dec("12.50"), Price: &wrong,
	})
	assert.ErrorIs(t, err, ErrPriceMismatch)

	var cnt int64
	db.Model(&entity.CartItem{}).Count(&cnt)
	assert.EqualValues(t, 0, cnt, "no partial state on validation failure")
}

func TestAddItemUnknownMenuItem(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "alice")

	_, err := svc.AddItem(user.ID, &AddCartItemIn{MenuItemID: 999, Quantity: 1, UnitPrice: dec("1.00")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddItemDuplicateConflicts(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "alice")
	item := seedMenuItem(t, db, "Bruschetta", "12.50")

	_, err := svc.AddItem(user.ID, &AddCartItemIn{MenuItemID: item.ID, Quantity: 1, UnitPrice: dec("12.50")})
	require.NoError(t, err)

	_, err = svc.AddItem(user.ID, &AddCartItemIn{MenuItemID: item.ID, Quantity: 2, UnitPrice: dec("12.50")})
	assert.ErrorIs(t, err, ErrDuplicateCartItem)

	var cnt int64
	db.Model(&entity.CartItem{}).Where("user_id = ?", user.ID).Count(&cnt)
	assert.EqualValues(t, 1, cnt, "cart still holds exactly one row")

	// same menu item, different user is fine
	bob := seedUser(t, db, "bob")
	_, err = svc.AddItem(bob.ID, &AddCartItemIn{MenuItemID: item.ID, Quantity: 1, UnitPrice: dec("12.50")})
	assert.NoError(t, err)
}

func TestListItemsResolvesMenuDetail(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "alice")
	item := seedMenuItem(t, db, "Bruschetta", "12.50")

	_, err := svc.AddItem(user.ID, &AddCartItemIn{MenuItemID: item.ID, Quantity: 1, UnitPrice: dec("12.50")})
	require.NoError(t, err)

	items, err := svc.ListItems(user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Bruschetta", items[0].MenuItem.Title)
	assert.Equal(t, "Mains", items[0].MenuItem.Category.Title)
}

func TestRemoveItemOwnershipEnforced(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	item := seedMenuItem(t, db, "Bruschetta", "12.50")

	added, err := svc.AddItem(alice.ID, &AddCartItemIn{MenuItemID: item.ID, Quantity: 1, UnitPrice: dec("12.50")})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.RemoveItem(bob.ID, added.ID), ErrForbidden)
	assert.ErrorIs(t, svc.RemoveItem(alice.ID, 999), ErrNotFound)
	assert.NoError(t, svc.RemoveItem(alice.ID, added.ID))

	items, err := svc.ListItems(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestClearCartIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "alice")
	item := seedMenuItem(t, db, "Bruschetta", "12.50")

	_, err := svc.AddItem(user.ID, &AddCartItemIn{MenuItemID: item.ID, Quantity: 1, UnitPrice: dec("12.50")})
	require.NoError(t, err)

	require.NoError(t, svc.Clear(user.ID))
	require.NoError(t, svc.Clear(user.ID), "clearing an empty cart succeeds")

	items, err := svc.ListItems(user.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}
