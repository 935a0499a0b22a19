package admin

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"chuma.band/site/cmd/web/handlers/common"
	"chuma.band/site/internal/store"
)

type productCreateRequest struct {
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Stock       int      `json:"stock"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	Sizes       []string `json:"sizes"`
	Colors      []string `json:"colors"`
}

func HandleProductCreate(st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req productCreateRequest
		if err := common.BindJSON(c, &req); err != nil {
			return err
		}
		product, err := st.AddProduct(c.Request().Context(), store.AddProductParams{
			Name:        req.Name,
			Price:       req.Price,
			Stock:       req.Stock,
			Description: req.Description,
			ImageURL:    req.ImageURL,
			Sizes:       req.Sizes,
			Colors:      req.Colors,
		})
		if err != nil {
			return common.FromStoreError(err)
		}
		return c.JSON(http.StatusCreated, product)
	}
}

func HandleProductDelete(st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := common.RequireIDParam(c, "id")
		if err != nil {
			return err
		}
		if err := st.DeleteProduct(c.Request().Context(), id); err != nil {
			return common.FromStoreError(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
