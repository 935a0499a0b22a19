package shop

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"chuma.band/site/cmd/web/handlers/common"
	"chuma.band/site/internal/store"
	"chuma.band/site/pkg/utils/format"
)

type orderResponse struct {
	store.Order
	TotalDisplay string `json:"totalDisplay"`
}

// HandleCheckout converts the signed-in user's cart into a pending order.
// Stock is validated for the whole cart before anything is committed.
func HandleCheckout(st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		order, err := st.Checkout(c.Request().Context())
		if err != nil {
			if errors.Is(err, store.ErrUnauthorized) {
				return common.ErrUnauthorized()
			}
			return common.FromStoreError(err)
		}
		return c.JSON(http.StatusCreated, orderResponse{
			Order:        order,
			TotalDisplay: format.Price(order.Total),
		})
	}
}
