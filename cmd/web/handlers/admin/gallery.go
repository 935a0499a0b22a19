package admin

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"chuma.band/site/cmd/web/handlers/common"
	"chuma.band/site/internal/store"
)

type galleryCreateRequest struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Featured bool   `json:"featured"`
}

func HandleGalleryCreate(st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req galleryCreateRequest
		if err := common.BindJSON(c, &req); err != nil {
			return err
		}
		item, err := st.AddGalleryItem(c.Request().Context(), store.AddGalleryItemParams{
			Title:    req.Title,
			URL:      req.URL,
			Featured: req.Featured,
		})
		if err != nil {
			return common.FromStoreError(err)
		}
		return c.JSON(http.StatusCreated, item)
	}
}

func HandleGalleryDelete(st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := common.RequireIDParam(c, "id")
		if err != nil {
			return err
		}
		if err := st.DeleteGalleryItem(c.Request().Context(), id); err != nil {
			return common.FromStoreError(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
