package store

import (
	"context"
	"fmt"
)

// baseRevenue is the mock revenue floor the dashboard builds on; each
// registered user adds a flat amount on top.
const (
	baseRevenue    = 45230.0
	revenuePerUser = 15.0
)

// Notifications returns the admin event log. Unrestricted read; the log
// carries nothing sensitive.
func (s *Store) Notifications(ctx context.Context) []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// MarkNotificationRead flips the read flag; the log itself is append-only.
func (s *Store) MarkNotificationRead(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Read = true
			return nil
		}
	}
	return ErrNotFound
}

func (s *Store) appendNotificationLocked(kind, message string) {
	s.notifications = append(s.notifications, Notification{
		ID:        newID("n"),
		Kind:      kind,
		Message:   message,
		CreatedAt: s.now(),
	})
}

// Analytics returns the per-day metrics series. Admin only.
func (s *Store) Analytics(ctx context.Context) ([]AnalyticsPoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.requireAdminLocked(); err != nil {
		return nil, err
	}
	out := make([]AnalyticsPoint, len(s.analytics))
	copy(out, s.analytics)
	return out, nil
}

// DashboardStats computes the admin dashboard cards from live collection
// state. Admin only.
func (s *Store) DashboardStats(ctx context.Context) (DashboardStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.requireAdminLocked(); err != nil {
		return DashboardStats{}, err
	}

	var streams int64
	for _, t := range s.tracks {
		streams += t.Plays
	}

	return DashboardStats{
		TotalUsers:   len(s.users),
		TotalStreams: streams,
		TotalRevenue: baseRevenue + float64(len(s.users))*revenuePerUser,
	}, nil
}

// AddToCart appends a product to the logged-in user's cart.
func (s *Store) AddToCart(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return ErrUnauthorized
	}

	found := false
	for i := range s.products {
		if s.products[i].ID == productID {
			found = true
			break
		}
	}
	if !found {
		return ErrNotFound
	}

	s.current.Cart = append(s.current.Cart, productID)
	if u := s.findUserByEmailLocked(s.current.Email); u != nil {
		u.Cart = s.current.Cart
	}
	s.persistSession(s.current)
	return nil
}

// Checkout drains the current user's cart into a pending order, decrementing
// stock. An out-of-stock item aborts the whole checkout with ErrInvalidInput
// and leaves stock untouched.
func (s *Store) Checkout(ctx context.Context) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return Order{}, ErrUnauthorized
	}
	if len(s.current.Cart) == 0 {
		return Order{}, fmt.Errorf("%w: cart is empty", ErrInvalidInput)
	}

	// Validate availability before touching any stock count.
	needed := map[string]int{}
	for _, pid := range s.current.Cart {
		needed[pid]++
	}
	total := 0.0
	for pid, n := range needed {
		p := s.findProductLocked(pid)
		if p == nil {
			return Order{}, fmt.Errorf("%w: product %s no longer exists", ErrInvalidInput, pid)
		}
		if p.Stock < n {
			return Order{}, fmt.Errorf("%w: %s is out of stock", ErrInvalidInput, p.Name)
		}
		total += p.Price * float64(n)
	}

	for pid, n := range needed {
		s.findProductLocked(pid).Stock -= n
	}

	order := Order{
		ID:        newID("o"),
		UserID:    s.current.ID,
		Items:     append([]string(nil), s.current.Cart...),
		Total:     total,
		Status:    OrderPending,
		CreatedAt: s.now(),
	}
	s.orders = append(s.orders, order)

	s.current.Cart = []string{}
	if u := s.findUserByEmailLocked(s.current.Email); u != nil {
		u.Cart = []string{}
	}
	s.persistSession(s.current)

	s.appendNotificationLocked("success", fmt.Sprintf("New order from %s", s.current.Name))
	return order, nil
}

// Orders lists placed orders. Admin only.
func (s *Store) Orders(ctx context.Context) ([]Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.requireAdminLocked(); err != nil {
		return nil, err
	}
	out := make([]Order, len(s.orders))
	copy(out, s.orders)
	return out, nil
}

func (s *Store) findProductLocked(id string) *Product {
	for i := range s.products {
		if s.products[i].ID == id {
			return &s.products[i]
		}
	}
	return nil
}
