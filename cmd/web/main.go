package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/afero"

	"chuma.band/site/cmd/web/auth"
	"chuma.band/site/cmd/web/handlers/admin"
	"chuma.band/site/cmd/web/internal/web"
	"chuma.band/site/internal/config"
	"chuma.band/site/internal/enrich"
	"chuma.band/site/internal/kv"
	"chuma.band/site/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("Starting web service")

	conf, err := config.LoadConfig(ctx)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	secrets, err := kv.NewStore(afero.NewOsFs(), conf.DataDir)
	if err != nil {
		slog.Error("failed to open data dir", "error", err, "dir", conf.DataDir)
		os.Exit(1)
	}

	st := store.New(store.Options{
		Snapshots:  secrets,
		AdminEmail: conf.AdminEmail,
	})

	// A credential saved from the back-office wins over the environment.
	credential := conf.YouTubeAPIKey
	if raw, found, err := secrets.Get(admin.CredentialKey); err == nil && found {
		credential = string(raw)
	}
	enricher := enrich.New(enrich.WithCredential(credential))

	sessionMgr := auth.NewSessionManager(conf.SessionSecret)

	e, err := web.NewWebserver(st, enricher, secrets, sessionMgr)
	if err != nil {
		slog.Error("failed to create webserver", "error", err)
		os.Exit(1)
	}

	addr := ":" + strconv.Itoa(conf.WebServerPort)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)
	}()

	slog.Info("Listening", "addr", addr)
	if err := e.Start(addr); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		// Echo returns an error on Shutdown; treat it as normal if context is done.
		if ctx.Err() != nil {
			return
		}
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
