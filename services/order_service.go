package services

import (
	"fmt"
	"strings"
	"time"

	"babylone/entity"
	"babylone/pkg/money"
	"babylone/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Notifier is the outbound notification channel. Sends are best-effort; the
// order workflow never learns about delivery failures.
type Notifier interface {
	NotifyOrder(orderID, message string, status entity.OrderStatus)
	Broadcast(message string)
}

type OrderService struct {
	DB     *gorm.DB
	Repo   *repository.OrderRepository
	Carts  *CartService
	Flow   entity.StatusFlow
	Notify Notifier
}

func NewOrderService(db *gorm.DB, r *repository.OrderRepository, carts *CartService, flow entity.StatusFlow, n Notifier) *OrderService {
	return &OrderService{DB: db, Repo: r, Carts: carts, Flow: flow, Notify: n}
}

type CheckoutIn struct {
	CustomerName    string `json:"customerName" binding:"required"`
	CustomerPhone   string `json:"customerPhone" binding:"required"`
	CustomerEmail   string `json:"customerEmail"`
	DeliveryAddress string `json:"deliveryAddress" binding:"required"`
}

// Checkout turns the session cart into a pending order and clears the cart.
// The order rows are written in one transaction; a validation failure commits
// nothing and leaves the cart untouched.
func (s *OrderService) Checkout(sessionID string, in *CheckoutIn) (*entity.Order, error) {
	if strings.TrimSpace(in.CustomerName) == "" ||
		strings.TrimSpace(in.CustomerPhone) == "" ||
		strings.TrimSpace(in.DeliveryAddress) == "" {
		return nil, fmt.Errorf("%w: nom, téléphone et adresse de livraison sont obligatoires", ErrValidation)
	}

	view := s.Carts.Get(sessionID)
	if len(view.Lines) == 0 {
		return nil, fmt.Errorf("%w: le panier est vide", ErrValidation)
	}

	items := make([]entity.OrderItem, len(view.Lines))
	for i, l := range view.Lines {
		items[i] = entity.OrderItem{
			ItemID:    l.LineID,
			Name:      l.Name,
			Qty:       l.Qty,
			UnitPrice: l.UnitPrice,
		}
	}

	now := time.Now()
	order := &entity.Order{
		CustomerName:      in.CustomerName,
		CustomerPhone:     in.CustomerPhone,
		CustomerEmail:     in.CustomerEmail,
		Total:             view.TotalAmount,
		Status:            entity.StatusPending,
		DeliveryAddress:   in.DeliveryAddress,
		Items:             items,
		CreatedAt:         now,
		EstimatedDelivery: now.Add(45 * time.Minute),
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		n, err := s.Repo.Count(tx)
		if err != nil {
			return err
		}
		order.ID = fmt.Sprintf("ORD-%03d", n+1)
		return s.Repo.Create(tx, order)
	})
	if err != nil {
		return nil, err
	}

	s.Carts.Clear(sessionID)
	s.Notify.Broadcast(fmt.Sprintf("Nouvelle commande %s (%s)", order.ID, order.Total))
	return order, nil
}

func (s *OrderService) List() ([]entity.Order, error) {
	return s.Repo.List()
}

func (s *OrderService) Get(id string) (*entity.Order, error) {
	return s.Repo.Get(id)
}

// BroadcastMessage pushes an announcement to every connected client.
func (s *OrderService) BroadcastMessage(message string) {
	s.Notify.Broadcast(message)
}

type DashboardStats struct {
	TotalOrders       int         `json:"totalOrders"`
	PendingOrders     int         `json:"pendingOrders"`
	Revenue           money.Cents `json:"revenue"`
	AverageOrderValue money.Cents `json:"averageOrderValue"`
}

func (s *OrderService) Stats() (*DashboardStats, error) {
	orders, err := s.Repo.List()
	if err != nil {
		return nil, err
	}

	st := &DashboardStats{TotalOrders: len(orders)}
	for _, o := range orders {
		if o.Status == entity.StatusPending {
			st.PendingOrders++
		}
		st.Revenue += o.Total
	}
	if len(orders) > 0 {
		avg := st.Revenue.Decimal().Div(decimal.NewFromInt(int64(len(orders)))).Round(2)
		st.AverageOrderValue = money.FromDecimal(avg)
	}
	return st, nil
}
