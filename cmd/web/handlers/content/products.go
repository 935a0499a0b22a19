package content

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"chuma.band/site/internal/store"
	"chuma.band/site/pkg/utils/format"
	"chuma.band/site/pkg/utils/markdown"
)

// previewLength bounds the plain-text description shown on catalog cards.
const previewLength = 140

type productResponse struct {
	store.Product
	PriceDisplay       string `json:"priceDisplay"`
	DescriptionHTML    string `json:"descriptionHtml,omitempty"`
	DescriptionPreview string `json:"descriptionPreview,omitempty"`
}

// HandleProducts returns the storefront catalog. Descriptions are authored in
// markdown: the detail view gets sanitized HTML, catalog cards a truncated
// plain-text preview.
func HandleProducts(st *store.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		products := st.Products(c.Request().Context())
		out := make([]productResponse, 0, len(products))
		for _, p := range products {
			resp := productResponse{
				Product:      p,
				PriceDisplay: format.Price(p.Price),
			}
			if p.Description != "" {
				md := markdown.NewMarkdown(p.Description)
				resp.DescriptionHTML = string(md.Render())
				resp.DescriptionPreview = format.Truncate(string(md.PlainText()), previewLength)
			}
			out = append(out, resp)
		}
		return c.JSON(http.StatusOK, out)
	}
}
