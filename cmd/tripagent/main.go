package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/wanderkit/tripagent/pkg/config"
	"github.com/wanderkit/tripagent/pkg/meteo"
	"github.com/wanderkit/tripagent/pkg/osm"
	"github.com/wanderkit/tripagent/pkg/server"
	"github.com/wanderkit/tripagent/pkg/tools"
	"github.com/wanderkit/tripagent/pkg/trip"
	"github.com/wanderkit/tripagent/pkg/version"
	"github.com/wanderkit/tripagent/pkg/web"
)

var (
	showVersion bool
	debug       bool
	mcpMode     bool
	httpAddr    string
)

func init() {
	flag.BoolVar(&showVersion, "version", false, "Display version information")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.BoolVar(&mcpMode, "mcp", false, "Serve MCP tools over stdio instead of HTTP")
	flag.StringVar(&httpAddr, "http", "", "HTTP listen address (overrides TRIPAGENT_HTTP_ADDR)")
}

func main() {
	flag.Parse()

	// Configure logging
	var logLevel slog.Level
	if debug {
		logLevel = slog.LevelDebug
	} else {
		logLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	if showVersion {
		fmt.Println(version.String())
		return
	}

	cfg := config.Load(logger)
	if httpAddr != "" {
		cfg.HTTPAddr = httpAddr
	}

	// One throttle shared by everything that talks to Nominatim.
	throttle := osm.NewThrottle(cfg.GeocodeMinInterval)

	geocoder := osm.NewGeocodeClient(cfg.NominatimBaseURL, throttle, logger)
	geocoder.SetUserAgent(cfg.UserAgent)

	attractions := osm.NewOverpassClient(cfg.OverpassBaseURL, osm.NewThrottle(osm.OverpassMinInterval), logger)
	attractions.SetUserAgent(cfg.UserAgent)

	weather := meteo.NewClient(cfg.MeteoBaseURL, logger)

	planner := trip.NewPlanner(geocoder, weather, attractions, logger)

	if mcpMode {
		runMCP(logger, planner, geocoder, weather, attractions)
		return
	}

	runHTTP(logger, cfg, planner)
}

// runHTTP serves the REST surface until the process is killed.
func runHTTP(logger *slog.Logger, cfg *config.Config, planner *trip.Planner) {
	handler := web.NewHandler(planner, logger)
	router := web.NewRouter(handler, cfg.AllowedOrigins, logger)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("starting travel query service",
		"addr", cfg.HTTPAddr,
		"version", version.BuildVersion)

	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// runMCP exposes the same pipeline as MCP tools over stdio.
func runMCP(logger *slog.Logger, planner *trip.Planner, geocoder trip.Geocoder, weather trip.WeatherService, attractions trip.AttractionFinder) {
	registry := tools.NewRegistry(logger, planner, geocoder, weather, attractions)

	srv, err := server.NewServer(logger, registry)
	if err != nil {
		logger.Error("failed to create server", "error", err)
		os.Exit(1)
	}

	logger.Info("MCP server initialized, waiting for requests")
	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
