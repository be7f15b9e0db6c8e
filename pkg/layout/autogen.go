package layout

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

const (
	// AutogeneratedMarker marks a descriptor written by a generator tool.
	AutogeneratedMarker = "autogenerated"

	// DescriptorExt is the file extension of device descriptor files.
	DescriptorExt = ".tablet"
)

// DescriptorPath returns the path of the descriptor belonging to a layout
// file: the layout base name with ".svg" replaced by ".tablet", in dataDir.
func DescriptorPath(dataDir, layoutFilename string) string {
	base := filepath.Base(layoutFilename)
	return filepath.Join(dataDir, strings.ReplaceAll(base, ".svg", DescriptorExt))
}

// IsAutogenerated reports whether the descriptor of a layout file contains
// the autogenerated marker on any line. A missing or unreadable descriptor
// is not autogenerated.
func IsAutogenerated(dataDir, layoutFilename string) bool {
	if layoutFilename == "" {
		return false
	}

	f, err := os.Open(DescriptorPath(dataDir, layoutFilename))
	if err != nil {
		return false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if strings.Contains(scanner.Text(), AutogeneratedMarker) {
			return true
		}
	}
	return false
}
