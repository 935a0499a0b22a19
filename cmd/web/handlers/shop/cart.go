package shop

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"chuma.band/site/cmd/web/handlers/common"
	"chuma.band/site/internal/store"
)

type addToCartRequest struct {
	ProductID string `json:"productId"`
}

func HandleAddToCart(st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req addToCartRequest
		if err := common.BindJSON(c, &req); err != nil {
			return err
		}
		if req.ProductID == "" {
			return common.ErrBadRequest("productId is required")
		}
		if err := st.AddToCart(c.Request().Context(), req.ProductID); err != nil {
			// Cart operations need a signed-in user, not an admin.
			if errors.Is(err, store.ErrUnauthorized) {
				return common.ErrUnauthorized()
			}
			return common.FromStoreError(err)
		}
		user, _ := st.CurrentUser()
		return c.JSON(http.StatusOK, user)
	}
}
