package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func loginAdmin(t *testing.T, s *Store) {
	t.Helper()
	_, err := s.Login(context.Background(), "admin@x.com")
	require.NoError(t, err)
}

func TestAnalytics_RequiresAdmin(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Analytics(ctx)
	require.ErrorIs(t, err, ErrUnauthorized)

	loginAdmin(t, s)
	points, err := s.Analytics(ctx)
	require.NoError(t, err)
	require.Len(t, points, 5)
}

func TestDashboardStats_ComputedFromLiveState(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.DashboardStats(ctx)
	require.ErrorIs(t, err, ErrUnauthorized)

	loginAdmin(t, s)
	stats, err := s.DashboardStats(ctx)
	require.NoError(t, err)

	// Seed admin + the login above.
	require.Equal(t, 2, stats.TotalUsers)

	var wantStreams int64
	for _, track := range s.Music(ctx) {
		wantStreams += track.Plays
	}
	require.Equal(t, wantStreams, stats.TotalStreams)
	require.Equal(t, baseRevenue+2*revenuePerUser, stats.TotalRevenue)
}

func TestAddToCart_RequiresLogin(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.ErrorIs(t, s.AddToCart(ctx, "p_1"), ErrUnauthorized)

	_, err := s.Login(ctx, "fan@x.com")
	require.NoError(t, err)
	require.NoError(t, s.AddToCart(ctx, "p_1"))
	require.ErrorIs(t, s.AddToCart(ctx, "p_missing"), ErrNotFound)

	current, ok := s.CurrentUser()
	require.True(t, ok)
	require.Equal(t, []string{"p_1"}, current.Cart)
}

func TestCheckout_DrainsCartAndDecrementsStock(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Login(ctx, "fan@x.com")
	require.NoError(t, err)
	require.NoError(t, s.AddToCart(ctx, "p_1"))
	require.NoError(t, s.AddToCart(ctx, "p_2"))

	order, err := s.Checkout(ctx)
	require.NoError(t, err)
	require.Equal(t, OrderPending, order.Status)
	require.Equal(t, 95.0, order.Total)
	require.Len(t, order.Items, 2)

	current, ok := s.CurrentUser()
	require.True(t, ok)
	require.Empty(t, current.Cart)

	for _, p := range s.Products(ctx) {
		switch p.ID {
		case "p_1":
			require.Equal(t, 119, p.Stock)
		case "p_2":
			require.Equal(t, 24, p.Stock)
		}
	}

	// One "new user" notification plus one order notification.
	notes := s.Notifications(ctx)
	require.Len(t, notes, 2)
	require.Equal(t, "success", notes[1].Kind)
}

func TestCheckout_OutOfStockAbortsWithoutSideEffects(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	scarce, err := s.AddProduct(ctx, AddProductParams{Name: "One-off Print", Price: 100, Stock: 1})
	require.NoError(t, err)

	_, err = s.Login(ctx, "fan@x.com")
	require.NoError(t, err)
	require.NoError(t, s.AddToCart(ctx, scarce.ID))
	require.NoError(t, s.AddToCart(ctx, scarce.ID))

	_, err = s.Checkout(ctx)
	require.ErrorIs(t, err, ErrInvalidInput)

	// Stock untouched, cart intact for the user to fix.
	for _, p := range s.Products(ctx) {
		if p.ID == scarce.ID {
			require.Equal(t, 1, p.Stock)
		}
	}
	current, _ := s.CurrentUser()
	require.Len(t, current.Cart, 2)
}

func TestMarkNotificationRead(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Login(ctx, "fan@x.com")
	require.NoError(t, err)

	notes := s.Notifications(ctx)
	require.Len(t, notes, 1)
	require.False(t, notes[0].Read)

	require.NoError(t, s.MarkNotificationRead(ctx, notes[0].ID))
	require.True(t, s.Notifications(ctx)[0].Read)
	require.ErrorIs(t, s.MarkNotificationRead(ctx, "n_missing"), ErrNotFound)
}
