package admin

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"chuma.band/site/cmd/web/handlers/common"
	"chuma.band/site/internal/enrich"
	"chuma.band/site/internal/kv"
)

// CredentialKey is where the metadata API credential is persisted.
const CredentialKey = "yt_api_key"

type credentialRequest struct {
	APIKey string `json:"apiKey"`
}

type credentialResponse struct {
	HasKey bool `json:"hasKey"`
}

// HandleCredentialUpdate stores the metadata API credential and applies it
// to the running enricher. An empty key clears the credential.
func HandleCredentialUpdate(enricher *enrich.Enricher, secrets *kv.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req credentialRequest
		if err := common.BindJSON(c, &req); err != nil {
			return err
		}
		key := strings.TrimSpace(req.APIKey)

		if key == "" {
			if err := secrets.Delete(CredentialKey); err != nil {
				slog.Error("failed to clear credential", "error", err)
				return common.ErrInternal("failed to clear credential")
			}
		} else {
			if err := secrets.Set(CredentialKey, []byte(key)); err != nil {
				slog.Error("failed to persist credential", "error", err)
				return common.ErrInternal("failed to persist credential")
			}
		}

		enricher.SetCredential(key)
		return c.JSON(http.StatusOK, credentialResponse{HasKey: key != ""})
	}
}

// HandleCredentialStatus reports whether a credential is configured without
// ever echoing the key back.
func HandleCredentialStatus(secrets *kv.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		_, found, err := secrets.Get(CredentialKey)
		if err != nil {
			slog.Error("failed to read credential", "error", err)
			return common.ErrInternal("failed to read credential")
		}
		return c.JSON(http.StatusOK, credentialResponse{HasKey: found})
	}
}
