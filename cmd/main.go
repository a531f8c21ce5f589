// Copyright The Storefront Commerce Authors.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/storefront-commerce/catalog-search-service/cmd/service"
	logging "github.com/storefront-commerce/catalog-search-service/pkg/log"
)

const defaultPort = "8080"

func init() {
	logging.InitStructuredLogging()
}

func main() {
	var (
		dbgF = flag.Bool("d", false, "mount profiling endpoints")
		port = flag.String("p", defaultPort, "listen port")
		bind = flag.String("bind", "", "interface to bind on")
	)
	flag.Usage = func() {
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	api := service.NewCatalogAPI(ctx)

	// Any error pushed here, including the termination signal, stops
	// the server.
	errc := make(chan error)
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
		errc <- fmt.Errorf("signal: %s", <-c)
	}()

	var wg sync.WaitGroup
	handleHTTPServer(ctx, net.JoinHostPort(*bind, *port), api, &wg, errc, *dbgF)

	slog.InfoContext(ctx, "exiting", "reason", <-errc)

	cancel()
	wg.Wait()
	slog.InfoContext(ctx, "exited")
}
