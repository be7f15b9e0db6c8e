// Package scenario pairs catalog devices with their layout documents and
// groups them into the views the layout checks run over.
package scenario

import (
	"log/slog"
	"os"
	"path/filepath"
)

// RootEnv names the environment variable holding the source root.
const RootEnv = "MESON_SOURCE_ROOT"

// Config holds the filesystem locations of a validation run.
type Config struct {
	// Root is the source root. Defaults to ".".
	Root string

	// DataDir holds device descriptor files. Defaults to <Root>/data.
	DataDir string

	// LayoutsDir holds layout diagrams. Defaults to <DataDir>/layouts.
	LayoutsDir string

	// CatalogFile is the device database. Defaults to <DataDir>/devices.yaml.
	CatalogFile string

	// Logger is the optional logger for debug output.
	Logger *slog.Logger
}

// ConfigFromEnv returns a Config rooted at $MESON_SOURCE_ROOT, or "." if unset.
func ConfigFromEnv() Config {
	return Config{Root: os.Getenv(RootEnv)}.WithDefaults()
}

// WithDefaults returns a copy of c with empty locations derived from Root.
func (c Config) WithDefaults() Config {
	if c.Root == "" {
		c.Root = "."
	}
	if c.DataDir == "" {
		c.DataDir = filepath.Join(c.Root, "data")
	}
	if c.LayoutsDir == "" {
		c.LayoutsDir = filepath.Join(c.DataDir, "layouts")
	}
	if c.CatalogFile == "" {
		c.CatalogFile = filepath.Join(c.DataDir, "devices.yaml")
	}
	return c
}
