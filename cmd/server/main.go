package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/givers/contacts/internal/config"
	"github.com/givers/contacts/internal/handler"
	"github.com/givers/contacts/internal/logging"
	"github.com/givers/contacts/internal/relay"
	"github.com/givers/contacts/internal/repository"
	"github.com/givers/contacts/internal/service"
	"github.com/givers/contacts/internal/view"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := logging.Setup(cfg.Log.Level, cfg.Log.Format)

	ctx := context.Background()
	store, closeStore, err := repository.OpenStorage(ctx, cfg.Storage)
	if err != nil {
		logging.Fatal("failed to open storage", "driver", cfg.Storage.Driver, "error", err)
	}
	defer closeStore()

	form := view.NewFormState()
	contacts := service.NewContactStore(
		repository.NewSnapshotContactRepository(store, cfg.Storage.Slot),
		form,
		service.WithLogger(logger),
	)
	if err := contacts.Load(ctx); err != nil {
		logging.Fatal("failed to load contacts", "error", err)
	}

	relayCfg := handler.RelayConfig{Mode: cfg.Relay.Mode}
	if cfg.Relay.Mode != config.RelayOff {
		relayCfg.Client = relay.NewClient(cfg.Relay.Endpoint, cfg.Relay.Subject, cfg.Relay.Timeout)
	}

	h := handler.New(store, cfg.Server.FrontendURL)
	contactHandler := handler.NewContactHandler(contacts, form, relayCfg)
	limiter := handler.NewRateLimiter(cfg.Server.SubmitPerMinute)
	limit := func(fn http.HandlerFunc) http.Handler { return limiter.Middleware(fn) }

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)

	// フォーム画面
	mux.HandleFunc("GET /{$}", contactHandler.Index)
	mux.Handle("POST /contact", limit(contactHandler.SubmitForm))
	mux.HandleFunc("POST /contact/cancel", contactHandler.CancelForm)
	mux.HandleFunc("POST /contact/{position}/edit", contactHandler.EditForm)
	mux.HandleFunc("GET /contact/{position}/delete", contactHandler.ConfirmDelete)
	mux.HandleFunc("POST /contact/{position}/delete", contactHandler.DeleteForm)

	// JSON API
	mux.HandleFunc("GET /api/contacts", contactHandler.List)
	mux.Handle("POST /api/contacts", limit(contactHandler.Create))
	mux.HandleFunc("PUT /api/contacts/{position}", contactHandler.Update)
	mux.HandleFunc("DELETE /api/contacts/{position}", contactHandler.Delete)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler.RequestID(handler.RequestLogger(handler.SecurityHeaders(h.CORS(mux)))),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "storage", cfg.Storage.Driver, "relay", cfg.Relay.Mode)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
