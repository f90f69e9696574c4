package services

import (
	"testing"

	"github.com/ahmedxgouda/LittleLemon/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func fillCart(t *testing.T, db *gorm.DB, userID uint, title, price string, qty int) {
	t.Helper()
	item := seedMenuItem(t, db, title, price)
	_, err := newCartService(db).AddItem(userID, &AddCartItemIn{
		MenuItemID: item.ID,
		Quantity:   qty,
		UnitPrice:  dec(price),
	})
	require.NoError(t, err)
}

func TestCreateOrderFromCart(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	user := seedUser(t, db, "alice")
	fillCart(t, db, user.ID, "Bruschetta", "12.50", 2)

	order, err := svc.CreateFromCart(user.ID, dec("25.00"), tomorrow())
	require.NoError(t, err)

	assert.True(t, order.Total.Equal(dec("25.00")), "total = %s", order.Total)
	assert.False(t, order.Status)
	assert.Nil(t, order.DeliveryCrewID)
	require.Len(t, order.OrderItems, 1)
	assert.True(t, order.OrderItems[0].Price.Equal(dec("25.00")))
	assert.True(t, order.OrderItems[0].UnitPrice.Equal(dec("12.50")))
	assert.Equal(t, 2, order.OrderItems[0].Quantity)

	var cartCnt int64
	db.Model(&entity.CartItem{}).Where("user_id = ?", user.ID).Count(&cartCnt)
	assert.EqualValues(t, 0, cartCnt, "cart emptied by order creation")
}

func TestCreateOrderEmptyCart(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	user := seedUser(t, db, "alice")

	_, err := svc.CreateFromCart(user.ID, dec("0"), tomorrow())
	assert.ErrorIs(t, err, ErrEmptyCart)

	var cnt int64
	db.Model(&entity.Order{}).Count(&cnt)
	assert.EqualValues(t, 0, cnt, "no order persisted")
}

func TestCreateOrderTotalMismatch(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	user := seedUser(t, db, "alice")
	fillCart(t, db, user.ID, "Bruschetta", "12.50", 2)

	_, err := svc.CreateFromCart(user.ID, dec("20.00"), tomorrow())
	assert.ErrorIs(t, err, ErrTotalMismatch)

	var orders, items int64
	db.Model(&entity.Order{}).Count(&orders)
	db.Model(&entity.CartItem{}).Where("user_id = ?", user.ID).Count(&items)
	assert.EqualValues(t, 0, orders, "nothing persisted")
	assert.EqualValues(t, 1, items, "cart untouched")
}

func TestCreateOrderPastDate(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	user := seedUser(t, db, "alice")
	fillCart(t, db, user.ID, "Bruschetta", "12.50", 1)

	_, err := svc.CreateFromCart(user.ID, dec("12.50"), yesterday())
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestCreateOrderSnapshotSurvivesMenuEdit(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	user := seedUser(t, db, "alice")
	item := seedMenuItem(t, db, "Bruschetta", "12.50")
	_, err := newCartService(db).AddItem(user.ID, &AddCartItemIn{
		MenuItemID: item.ID, Quantity: 2, UnitPrice: dec("12.50"),
	})
	require.NoError(t, err)

	order, err := svc.CreateFromCart(user.ID, dec("25.00"), tomorrow())
	require.NoError(t, err)

	// later menu price change must not touch the historical order
	require.NoError(t, db.Model(&entity.MenuItem{}).Where("id = ?", item.ID).
		Update("price", dec("99.99")).Error)

	reloaded, err := svc.Get(order.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.Total.Equal(dec("25.00")))
	assert.True(t, reloaded.OrderItems[0].UnitPrice.Equal(dec("12.50")))
}

func TestReplaceOrderRebuildsFromCurrentCart(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	user := seedUser(t, db, "alice")
	fillCart(t, db, user.ID, "Bruschetta", "12.50", 2)

	order, err := svc.CreateFromCart(user.ID, dec("25.00"), tomorrow())
	require.NoError(t, err)

	// replacement uses the cart as it stands now, not the order's items
	fillCart(t, db, user.ID, "Lemon Tart", "3.25", 1)
	updated, err := svc.Replace(order, user.ID, dec("3.25"), tomorrow())
	require.NoError(t, err)

	assert.True(t, updated.Total.Equal(dec("3.25")), "total = %s", updated.Total)
	items, err := svc.Repo.GetOrderItems(order.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].UnitPrice.Equal(dec("3.25")))

	var cartCnt int64
	db.Model(&entity.CartItem{}).Where("user_id = ?", user.ID).Count(&cartCnt)
	assert.EqualValues(t, 0, cartCnt)
}

func TestReplaceOrderEmptyCartLeavesOrderIntact(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	user := seedUser(t, db, "alice")
	fillCart(t, db, user.ID, "Bruschetta", "12.50", 2)

	order, err := svc.CreateFromCart(user.ID, dec("25.00"), tomorrow())
	require.NoError(t, err)

	_, err = svc.Replace(order, user.ID, dec("25.00"), tomorrow())
	assert.ErrorIs(t, err, ErrEmptyCart)

	reloaded, err := svc.Get(order.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.Total.Equal(dec("25.00")))
	require.Len(t, reloaded.OrderItems, 1)
}

func TestPatchOrderStatusAndCrew(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	user := seedUser(t, db, "alice")
	crew := seedUser(t, db, "carol", entity.GroupDeliveryCrew)
	fillCart(t, db, user.ID, "Bruschetta", "12.50", 1)

	order, err := svc.CreateFromCart(user.ID, dec("12.50"), tomorrow())
	require.NoError(t, err)

	status := true
	updated, err := svc.Patch(order, &PatchOrderIn{Status: &status, DeliveryCrewID: &crew.ID})
	require.NoError(t, err)
	assert.True(t, updated.Status)
	require.NotNil(t, updated.DeliveryCrewID)
	assert.Equal(t, crew.ID, *updated.DeliveryCrewID)

	reloaded, err := svc.Get(order.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.Status)
	require.NotNil(t, reloaded.DeliveryCrewID)
	assert.Equal(t, crew.ID, *reloaded.DeliveryCrewID)
}

func TestPatchOrderUnknownCrew(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	user := seedUser(t, db, "alice")
	fillCart(t, db, user.ID, "Bruschetta", "12.50", 1)

	order, err := svc.CreateFromCart(user.ID, dec("12.50"), tomorrow())
	require.NoError(t, err)

	unknown := uint(999)
	_, err = svc.Patch(order, &PatchOrderIn{DeliveryCrewID: &unknown})
	assert.ErrorIs(t, err, ErrNotFound)

	reloaded, err := svc.Get(order.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.DeliveryCrewID)
}

func TestListOrdersScopedByRole(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	crew := seedUser(t, db, "carol", entity.GroupDeliveryCrew)

	fillCart(t, db, alice.ID, "Bruschetta", "12.50", 1)
	aliceOrder, err := svc.CreateFromCart(alice.ID, dec("12.50"), tomorrow())
	require.NoError(t, err)
	fillCart(t, db, bob.ID, "Lemon Tart", "3.25", 1)
	_, err = svc.CreateFromCart(bob.ID, dec("3.25"), tomorrow())
	require.NoError(t, err)

	_, err = svc.Patch(aliceOrder, &PatchOrderIn{DeliveryCrewID: &crew.ID})
	require.NoError(t, err)

	all, err := svc.List(entity.RoleSet{Manager: true}, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	assigned, err := svc.List(entity.RoleSet{DeliveryCrew: true}, crew.ID)
	require.NoError(t, err)
	require.Len(t, assigned, 1)
	assert.Equal(t, aliceOrder.ID, assigned[0].ID)

	own, err := svc.List(entity.RoleSet{}, alice.ID)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, alice.ID, own[0].UserID)
}

func TestDeleteOrderRemovesItems(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	user := seedUser(t, db, "alice")
	fillCart(t, db, user.ID, "Bruschetta", "12.50", 1)

	order, err := svc.CreateFromCart(user.ID, dec("12.50"), tomorrow())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(order))

	_, err = svc.Get(order.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	var items int64
	db.Model(&entity.OrderItem{}).Where("order_id = ?", order.ID).Count(&items)
	assert.EqualValues(t, 0, items, "order items cascade with the order")
}
