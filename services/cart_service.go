package services

import (
	"sync"

	"babylone/entity"
	"babylone/pkg/cart"
	"babylone/pkg/money"
	"babylone/repository"
)

// CartService owns one in-memory cart per browsing session. Carts never touch
// the database; they live and die with the session.
type CartService struct {
	MenuRepo *repository.MenuRepository

	mu    sync.Mutex
	carts map[string]*cart.Cart
}

func NewCartService(mr *repository.MenuRepository) *CartService {
	return &CartService{MenuRepo: mr, carts: make(map[string]*cart.Cart)}
}

func (s *CartService) cartFor(sessionID string) *cart.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[sessionID]
	if !ok {
		c = cart.New()
		s.carts[sessionID] = c
	}
	return c
}

type CartView struct {
	Lines          []cart.Line `json:"lines"`
	TotalItemCount int         `json:"totalItemCount"`
	TotalAmount    money.Cents `json:"totalAmount"`
}

func (s *CartService) Get(sessionID string) CartView {
	c := s.cartFor(sessionID)
	count, amount := c.Totals()
	return CartView{Lines: c.Lines(), TotalItemCount: count, TotalAmount: amount}
}

type AddToCartIn struct {
	ItemID   string   `json:"itemId" binding:"required"`
	AddonIDs []string `json:"addonIds"`
}

// Add loads the item with its addons, resolves the customized line and merges
// it into the session cart. Unknown addon ids are dropped by the resolver.
func (s *CartService) Add(sessionID string, in *AddToCartIn) (cart.Line, error) {
	item, err := s.MenuRepo.GetItem(in.ItemID)
	if err != nil {
		return cart.Line{}, err
	}

	line := cart.Resolve(itemView(item), in.AddonIDs)
	s.cartFor(sessionID).Add(line)
	return line, nil
}

func (s *CartService) UpdateQty(sessionID, lineID string, qty int) {
	s.cartFor(sessionID).UpdateQuantity(lineID, qty)
}

func (s *CartService) Remove(sessionID, lineID string) {
	s.cartFor(sessionID).Remove(lineID)
}

func (s *CartService) Clear(sessionID string) {
	s.cartFor(sessionID).Clear()
}

func itemView(m *entity.MenuItem) cart.ItemView {
	addons := make([]cart.AddonView, len(m.Addons))
	for i, a := range m.Addons {
		addons[i] = cart.AddonView{ID: a.ID, Name: a.Name, Price: a.Price}
	}
	return cart.ItemView{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Addons:      addons,
	}
}
