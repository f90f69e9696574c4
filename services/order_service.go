package services

import (
	"errors"
	"log"
	"time"

	"github.com/ahmedxgouda/LittleLemon/entity"
	"github.com/ahmedxgouda/LittleLemon/events"
	"github.com/ahmedxgouda/LittleLemon/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderService struct {
	DB        *gorm.DB
	Repo      *repository.OrderRepository
	CartRepo  *repository.CartRepository
	UserRepo  *repository.UserRepository
	Publisher events.Publisher
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	userRepo *repository.UserRepository,
	pub events.Publisher,
) *OrderService {
	if pub == nil {
		pub = events.NopPublisher{}
	}
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, UserRepo: userRepo, Publisher: pub}
}

type PatchOrderIn struct {
	Status         *bool
	DeliveryCrewID *uint
}

func beforeToday(d time.Time) bool {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, d.Location())
	return d.Before(today)
}

// CreateFromCart converts the caller's cart into an order. The total is always
// computed server-side from the cart rows; the declared total is only a
// consistency check. Order + items + cart clear land atomically.
func (s *OrderService) CreateFromCart(userID uint, declaredTotal decimal.Decimal, date time.Time) (*entity.Order, error) {
	var order *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		items, err := s.CartRepo.ItemsByUserTx(tx, userID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		total := decimal.Zero
		for _, it := range items {
			total = total.Add(it.Price)
		}
		if !declaredTotal.Equal(total) {
			return ErrTotalMismatch
		}
		if beforeToday(date) {
			return ErrInvalidDate
		}

		order = &entity.Order{
			UserID: userID,
			Total:  total,
			Status: false,
			Date:   date,
		}
		if err := s.Repo.CreateOrder(tx, order); err != nil {
			return err
		}

		// snapshot copy: quantity, unit_price, price verbatim
		for _, it := range items {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: it.MenuItemID,
				Quantity:   it.Quantity,
				UnitPrice:  it.UnitPrice,
				Price:      it.Price,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
			order.OrderItems = append(order.OrderItems, oi)
		}

		return s.CartRepo.ClearUser(tx, userID)
	})
	if err != nil {
		return nil, err
	}

	s.publish(order, events.OrderCreated)
	return order, nil
}

// Replace rebuilds the order from the caller's current cart, mirroring create
// semantics: validate total and date against the cart, swap out every order
// item, clear the cart. All or nothing.
func (s *OrderService) Replace(order *entity.Order, callerID uint, declaredTotal decimal.Decimal, date time.Time) (*entity.Order, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		items, err := s.CartRepo.ItemsByUserTx(tx, callerID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		total := decimal.Zero
		for _, it := range items {
			total = total.Add(it.Price)
		}
		if !declaredTotal.Equal(total) {
			return ErrTotalMismatch
		}
		if beforeToday(date) {
			return ErrInvalidDate
		}

		if err := s.Repo.UpdateOrder(tx, order.ID, map[string]any{
			"total": total,
			"date":  date,
		}); err != nil {
			return err
		}
		order.Total = total
		order.Date = date

		if err := s.Repo.DeleteOrderItems(tx, order.ID); err != nil {
			return err
		}
		order.OrderItems = order.OrderItems[:0]
		for _, it := range items {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: it.MenuItemID,
				Quantity:   it.Quantity,
				UnitPrice:  it.UnitPrice,
				Price:      it.Price,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
			order.OrderItems = append(order.OrderItems, oi)
		}

		return s.CartRepo.ClearUser(tx, callerID)
	})
	if err != nil {
		return nil, err
	}

	s.publish(order, events.OrderReplaced)
	return order, nil
}

// Patch applies only status and/or delivery crew assignment. The field-set
// policy has already run; this validates the values.
func (s *OrderService) Patch(order *entity.Order, in *PatchOrderIn) (*entity.Order, error) {
	updates := map[string]any{}
	if in.DeliveryCrewID != nil {
		ok, err := s.UserRepo.Exists(*in.DeliveryCrewID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrNotFound
		}
		updates["delivery_crew_id"] = *in.DeliveryCrewID
		order.DeliveryCrewID = in.DeliveryCrewID
	}
	if in.Status != nil {
		updates["status"] = *in.Status
		order.Status = *in.Status
	}
	if len(updates) == 0 {
		return order, nil
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.UpdateOrder(tx, order.ID, updates)
	})
	if err != nil {
		return nil, err
	}

	s.publish(order, events.OrderStatusChanged)
	return order, nil
}

func (s *OrderService) Get(orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

// List returns the caller's scope: managers see everything, crew their
// assignments, customers their own orders.
func (s *OrderService) List(roles entity.RoleSet, callerID uint) ([]entity.Order, error) {
	switch {
	case roles.Manager:
		return s.Repo.ListAll()
	case roles.DeliveryCrew:
		return s.Repo.ListByCrew(callerID)
	default:
		return s.Repo.ListByUser(callerID)
	}
}

func (s *OrderService) Delete(order *entity.Order) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.DeleteOrderItems(tx, order.ID); err != nil {
			return err
		}
		return s.Repo.DeleteOrder(tx, order.ID)
	})
	if err != nil {
		return err
	}

	s.publish(order, events.OrderDeleted)
	return nil
}

func (s *OrderService) publish(o *entity.Order, eventType string) {
	ev := events.OrderEvent{
		OrderID:  o.ID,
		UserID:   o.UserID,
		Type:     eventType,
		Status:   o.Status,
		Total:    o.Total.StringFixed(2),
		Occurred: time.Now(),
	}
	if err := s.Publisher.PublishOrderEvent(ev); err != nil {
		log.Printf("publish %s for order %d: %v", eventType, o.ID, err)
	}
}
