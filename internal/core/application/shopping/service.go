// Package shopping edits session carts against the live catalog.
package shopping

import (
	"context"

	"canteen/internal/core/domain/model/cart"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/menu"
	"canteen/internal/core/ports"
	"canteen/internal/pkg/errs"
)

// Catalog looks up menu items without locking them.
type Catalog interface {
	Get(ctx context.Context, id menu.ItemID) (*menu.MenuItem, error)
}

// CartView is a read-only copy of a cart.
type CartView struct {
	SessionID kernel.UUID
	Lines     []cart.Line
	Version   uint64
}

// Subtotal sums the line totals.
func (v CartView) Subtotal() kernel.Money {
	total := kernel.Zero
	for _, l := range v.Lines {
		total = total.Add(l.Total())
	}
	return total
}

type Service struct {
	sessions ports.SessionStore
	catalog  Catalog
}

func NewService(sessions ports.SessionStore, catalog Catalog) (*Service, error) {
	if sessions == nil {
		return nil, errs.NewValueIsRequiredError("sessions")
	}
	if catalog == nil {
		return nil, errs.NewValueIsRequiredError("catalog")
	}
	return &Service{sessions: sessions, catalog: catalog}, nil
}

func (s *Service) StartSession() (kernel.UUID, error) {
	return s.sessions.Start()
}

func (s *Service) EndSession(id kernel.UUID) {
	s.sessions.End(id)
}

// Add puts qty portions of a menu item into the cart, merging with an
// existing line. The merged quantity is checked against current stock.
func (s *Service) Add(ctx context.Context, sessionID kernel.UUID, itemID menu.ItemID, qty int) (CartView, error) {
	item, err := s.catalog.Get(ctx, itemID)
	if err != nil {
		return CartView{}, err
	}
	return s.edit(sessionID, func(c *cart.Cart) error {
		return c.Add(item, qty)
	})
}

// SetQuantity replaces the quantity of a line; zero removes it.
func (s *Service) SetQuantity(ctx context.Context, sessionID kernel.UUID, itemID menu.ItemID, qty int) (CartView, error) {
	item, err := s.catalog.Get(ctx, itemID)
	if err != nil {
		return CartView{}, err
	}
	return s.edit(sessionID, func(c *cart.Cart) error {
		return c.SetQuantity(item, qty)
	})
}

// Remove takes qty portions of an item out of the cart.
func (s *Service) Remove(sessionID kernel.UUID, itemID menu.ItemID, qty int) (CartView, error) {
	return s.edit(sessionID, func(c *cart.Cart) error {
		return c.Remove(itemID, qty)
	})
}

// RemoveByName is Remove with the item picked by its name, ignoring case.
func (s *Service) RemoveByName(sessionID kernel.UUID, name string, qty int) (CartView, error) {
	return s.edit(sessionID, func(c *cart.Cart) error {
		line, ok := c.LineByName(name)
		if !ok {
			return errs.NewObjectNotFoundError("cart line", name)
		}
		return c.Remove(line.ItemID(), qty)
	})
}

func (s *Service) View(sessionID kernel.UUID) (CartView, error) {
	return s.edit(sessionID, func(*cart.Cart) error { return nil })
}

func (s *Service) edit(sessionID kernel.UUID, fn func(c *cart.Cart) error) (CartView, error) {
	var view CartView
	err := s.sessions.WithCart(sessionID, func(c *cart.Cart) error {
		if err := fn(c); err != nil {
			return err
		}
		view = CartView{SessionID: c.ID(), Lines: c.Lines(), Version: c.Version()}
		return nil
	})
	return view, err
}
