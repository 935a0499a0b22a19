package common

import (
	"github.com/labstack/echo/v4"
)

// RequireIDParam extracts a non-empty route parameter or returns a 400 error.
func RequireIDParam(c echo.Context, param string) (string, error) {
	id := c.Param(param)
	if id == "" {
		return "", ErrBadRequest("missing " + param)
	}
	return id, nil
}

// BindJSON decodes the request body into v or returns a 400 error.
func BindJSON(c echo.Context, v any) error {
	if err := c.Bind(v); err != nil {
		return ErrBadRequest("malformed request body")
	}
	return nil
}
