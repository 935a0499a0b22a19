package admin

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"chuma.band/site/cmd/web/handlers/common"
	"chuma.band/site/internal/store"
	"chuma.band/site/pkg/utils/format"
)

func HandleAnalytics(st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		points, err := st.Analytics(c.Request().Context())
		if err != nil {
			return common.FromStoreError(err)
		}
		return c.JSON(http.StatusOK, points)
	}
}

type statsResponse struct {
	store.DashboardStats
	TotalStreamsDisplay string `json:"totalStreamsDisplay"`
	TotalRevenueDisplay string `json:"totalRevenueDisplay"`
}

// HandleStats returns the dashboard cards, computed from live store state.
func HandleStats(st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		stats, err := st.DashboardStats(c.Request().Context())
		if err != nil {
			return common.FromStoreError(err)
		}
		return c.JSON(http.StatusOK, statsResponse{
			DashboardStats:      stats,
			TotalStreamsDisplay: format.Number(stats.TotalStreams),
			TotalRevenueDisplay: format.Price(stats.TotalRevenue),
		})
	}
}

func HandleOrders(st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		orders, err := st.Orders(c.Request().Context())
		if err != nil {
			return common.FromStoreError(err)
		}
		return c.JSON(http.StatusOK, orders)
	}
}
