// Copyright The Storefront Commerce Authors.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/storefront-commerce/catalog-search-service/cmd/service"
	"github.com/storefront-commerce/catalog-search-service/internal/middleware"
)

// handleHTTPServer configures and starts the HTTP server on the given host.
// It shuts the server down when the context is canceled or an error arrives
// on the error channel.
func handleHTTPServer(ctx context.Context, host string, api *service.CatalogAPI, wg *sync.WaitGroup, errc chan error, dbg bool) {

	mux := chi.NewRouter()
	mux.Use(chimiddleware.Recoverer)
	mux.Use(middleware.RequestID())

	mux.Get("/products", api.SearchProducts)
	mux.Get("/livez", api.Livez)
	mux.Get("/readyz", api.Readyz)
	mux.Handle("/metrics", promhttp.Handler())

	if dbg {
		// Mount pprof handlers under /debug/pprof.
		mux.Mount("/debug", chimiddleware.Profiler())
	}

	srv := &http.Server{
		Addr:              host,
		Handler:           mux,
		ReadHeaderTimeout: 60 * time.Second,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()

		go func() {
			slog.InfoContext(ctx, "HTTP server listening", "host", host)
			errc <- srv.ListenAndServe()
		}()

		<-ctx.Done()
		slog.InfoContext(ctx, "shutting down HTTP server", "host", host)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(ctx, "failed to shutdown HTTP server", "error", err)
		}
	}()
}
