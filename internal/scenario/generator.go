package scenario

import (
	"errors"
	"io"
	"log/slog"
	"path"
	"sort"

	"github.com/flying-elephant/libwacom/pkg/catalog"
	"github.com/flying-elephant/libwacom/pkg/check"
	"github.com/flying-elephant/libwacom/pkg/device"
	"github.com/flying-elephant/libwacom/pkg/layout"
)

// Generator builds validation targets from a device catalog.
//
// The generator keeps the catalog for its whole lifetime; targets refer to
// device records owned by it.
type Generator struct {
	config  Config
	catalog device.Catalog
	loader  *layout.Loader
	logger  *slog.Logger
	targets []*check.Target
}

// New enumerates the catalog, loads every referenced layout and returns
// the resulting generator. Devices without a layout reference are excluded.
func New(cfg Config, cat device.Catalog) (*Generator, error) {
	if cat == nil {
		return nil, errors.New("scenario: catalog is required")
	}
	cfg = cfg.WithDefaults()

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	g := &Generator{
		config:  cfg,
		catalog: cat,
		loader:  layout.NewLoader(cfg.LayoutsDir, logger),
		logger:  logger,
	}
	g.enumerate()
	return g, nil
}

// Load reads the catalog file named by cfg and builds a generator over it.
func Load(cfg Config) (*Generator, error) {
	cfg = cfg.WithDefaults()
	db, err := catalog.LoadFile(cfg.CatalogFile)
	if err != nil {
		return nil, err
	}
	return New(cfg, db)
}

func (g *Generator) enumerate() {
	for _, d := range g.catalog.ListDevices() {
		if d == nil || !d.HasLayout() {
			continue
		}

		t := &check.Target{
			Device:        d,
			Document:      g.loader.Load(d.LayoutFilename),
			Autogenerated: layout.IsAutogenerated(g.config.DataDir, d.LayoutFilename),
		}
		g.logger.Debug("target",
			"device", d.Name,
			"layout", t.ID(),
			"loaded", t.Document != nil,
			"autogenerated", t.Autogenerated)
		g.targets = append(g.targets, t)
	}

	sort.SliceStable(g.targets, func(i, j int) bool {
		return g.targets[i].Device.Name < g.targets[j].Device.Name
	})
}

// Config returns the resolved configuration.
func (g *Generator) Config() Config {
	return g.config
}

// Catalog returns the catalog the targets were built from.
func (g *Generator) Catalog() device.Catalog {
	return g.catalog
}

// All returns every target, ordered by device name.
func (g *Generator) All() []*check.Target {
	return g.View(check.ScopeAll)
}

// Rings returns the targets with at least one ring.
func (g *Generator) Rings() []*check.Target {
	return g.View(check.ScopeRings)
}

// Strips returns the targets with at least one strip.
func (g *Generator) Strips() []*check.Target {
	return g.View(check.ScopeStrips)
}

// Dials returns the targets with at least one dial.
func (g *Generator) Dials() []*check.Target {
	return g.View(check.ScopeDials)
}

// Buttons returns the targets with at least one button.
func (g *Generator) Buttons() []*check.Target {
	return g.View(check.ScopeButtons)
}

// View returns the targets within scope, ordered by device name.
func (g *Generator) View(scope check.Scope) []*check.Target {
	out := make([]*check.Target, 0, len(g.targets))
	for _, t := range g.targets {
		if scope.Includes(t.Device) {
			out = append(out, t)
		}
	}
	return out
}

// Filter returns the targets whose layout base name or device name matches
// the glob pattern. An empty pattern matches everything.
func Filter(targets []*check.Target, pattern string) []*check.Target {
	if pattern == "" {
		return targets
	}
	var out []*check.Target
	for _, t := range targets {
		if ok, _ := path.Match(pattern, t.ID()); ok {
			out = append(out, t)
			continue
		}
		if ok, _ := path.Match(pattern, t.Name()); ok {
			out = append(out, t)
		}
	}
	return out
}

// Find returns the target whose layout base name or device name equals key.
func (g *Generator) Find(key string) *check.Target {
	for _, t := range g.targets {
		if t.ID() == key || t.Name() == key {
			return t
		}
	}
	return nil
}

// IDs returns the layout base names of targets, in order.
func IDs(targets []*check.Target) []string {
	ids := make([]string, len(targets))
	for i, t := range targets {
		ids[i] = t.ID()
	}
	return ids
}
