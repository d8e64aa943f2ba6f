// wfhdash serves the remote/hybrid-work survey dashboard over HTTP: a single
// page with the four controls, a selection API and a chart image endpoint,
// all backed by the shared engine packages.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/sharedplanet/wfh-lse/src/aggregates"
	"github.com/sharedplanet/wfh-lse/src/logging"
)

// aggregatesPath is the fixed dataset location, produced next to the binary
// by the upstream aggregation step. The serving surface deliberately takes no
// path flag and consults no environment variables.
const aggregatesPath = "aggregates.json"

func main() {
	port := flag.Int("port", 8051, "HTTP port to serve the dashboard on")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	logger, err := logging.New(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wfhdash: %v\n", err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	store, err := aggregates.Load(aggregatesPath)
	if err != nil {
		logger.Fatal("load aggregates", zap.String("path", aggregatesPath), zap.Error(err))
	}
	logger.Info("aggregates loaded", zap.String("path", aggregatesPath), zap.Int("keys", store.Len()))

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	newServer(logger.Named("dash"), store).routes(e)

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("dashboard listening", zap.String("addr", addr))
	logger.Fatal("server stopped", zap.Error(e.Start(addr)))
}
