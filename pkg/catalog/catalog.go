package catalog

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/flying-elephant/libwacom/pkg/device"
)

// Database is an in-memory device catalog.
type Database struct {
	devices []*device.Device
	byName  map[string]*device.Device
}

// Parse parses a catalog from YAML bytes.
func Parse(data []byte) (*Database, error) {
	var f databaseFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, &LoadError{
			Message: "failed to parse YAML",
			Cause:   err,
		}
	}

	db := &Database{byName: make(map[string]*device.Device)}
	if err := db.add(f.Devices); err != nil {
		return nil, err
	}
	return db, nil
}

// LoadFile loads a catalog from a YAML file.
func LoadFile(path string) (*Database, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			File:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}

	db, err := Parse(data)
	if err != nil {
		if le, ok := err.(*LoadError); ok {
			le.File = path
			return nil, le
		}
		return nil, &LoadError{File: path, Message: err.Error()}
	}
	return db, nil
}

// LoadDirectory loads and merges all .yaml/.yml catalog files in a directory.
// Device names must be unique across files.
func LoadDirectory(dir string) (*Database, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &LoadError{
			File:    dir,
			Message: "failed to read directory",
			Cause:   err,
		}
	}

	db := &Database{byName: make(map[string]*device.Device)}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		part, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		if err := db.add(part.devices); err != nil {
			if le, ok := err.(*LoadError); ok {
				le.File = path
			}
			return nil, err
		}
	}
	return db, nil
}

func (db *Database) add(devices []*device.Device) error {
	for _, d := range devices {
		if d == nil {
			continue
		}
		if d.Name == "" {
			return &LoadError{Message: "device name is required"}
		}
		if _, exists := db.byName[d.Name]; exists {
			return &LoadError{Device: d.Name, Message: "duplicate device"}
		}
		if d.NumButtons < 0 || d.NumRings < 0 || d.NumStrips < 0 || d.NumDials < 0 {
			return &LoadError{Device: d.Name, Message: "control counts must not be negative"}
		}
		db.byName[d.Name] = d
		db.devices = append(db.devices, d)
	}
	return nil
}

// ListDevices returns all devices in load order.
func (db *Database) ListDevices() []*device.Device {
	out := make([]*device.Device, len(db.devices))
	copy(out, db.devices)
	return out
}

// Device returns the device with the given name, or nil.
func (db *Database) Device(name string) *device.Device {
	return db.byName[name]
}

// Names returns all device names, sorted.
func (db *Database) Names() []string {
	names := make([]string, 0, len(db.byName))
	for name := range db.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of devices.
func (db *Database) Len() int {
	return len(db.devices)
}

var _ device.Catalog = (*Database)(nil)
