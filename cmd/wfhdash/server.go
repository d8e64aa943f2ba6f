package main

import (
	"bytes"
	"fmt"
	"html/template"
	"image/png"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/sharedplanet/wfh-lse/src/aggregates"
	"github.com/sharedplanet/wfh-lse/src/catalog"
	"github.com/sharedplanet/wfh-lse/src/chartspec"
	"github.com/sharedplanet/wfh-lse/src/render"
	"github.com/sharedplanet/wfh-lse/src/selection"
)

type server struct {
	log      *zap.Logger
	resolver *selection.Resolver
	builder  chartspec.Builder
	page     *template.Template
}

func newServer(log *zap.Logger, store *aggregates.Store) *server {
	cat := catalog.Default()
	return &server{
		log:      log,
		resolver: selection.NewResolver(cat, catalog.BuildTaxonomy(cat, store)),
		builder:  chartspec.Builder{Store: store},
		page:     template.Must(template.New("page").Parse(pageHTML)),
	}
}

func (s *server) routes(e *echo.Echo) {
	e.GET("/", s.handleIndex)
	e.GET("/chart.png", s.handleChart)
	api := e.Group("/api")
	api.GET("/selection", s.handleSelection)
	api.GET("/aggregate", s.handleAggregate)
}

// stateFromQuery reads the four control parameters. Absent or stale values
// are fine; the resolver normalizes whatever arrives.
func stateFromQuery(c echo.Context) selection.State {
	return selection.State{
		Filter: c.QueryParam("filter"),
		Field:  c.QueryParam("field"),
		Choice: c.QueryParam("choice"),
		Disagg: c.QueryParam("disagg"),
	}
}

func (s *server) handleIndex(c echo.Context) error {
	res := s.resolver.Resolve(stateFromQuery(c))
	var buf bytes.Buffer
	if err := s.page.Execute(&buf, res); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

func (s *server) handleSelection(c echo.Context) error {
	return c.JSON(http.StatusOK, s.resolver.Resolve(stateFromQuery(c)))
}

func (s *server) handleChart(c echo.Context) error {
	res := s.resolver.Resolve(stateFromQuery(c))
	width, _ := strconv.Atoi(c.QueryParam("width"))

	data, err := render.PNG(s.builder.Build(res), width)
	if err != nil {
		// A selection is never wrong by construction, so a raster failure is
		// ours alone; serve the placeholder and keep the page updating.
		s.log.Error("chart render failed", zap.String("key", res.Key().String()), zap.Error(err))
		var buf bytes.Buffer
		if err := png.Encode(&buf, render.Placeholder(width)); err != nil {
			return fmt.Errorf("encode placeholder: %w", err)
		}
		data = buf.Bytes()
	}
	return c.Blob(http.StatusOK, "image/png", data)
}

func (s *server) handleAggregate(c echo.Context) error {
	key, err := aggregates.ParseKey(c.QueryParam("key"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	records, ok := s.builder.Store.Get(key)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "no aggregate under key"})
	}
	return c.JSON(http.StatusOK, records)
}
