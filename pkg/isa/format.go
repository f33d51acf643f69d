package isa

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Serialization format of instruction set files
type Format uint8

const (
	Format_JSON Format = iota
	Format_YAML
)

func (f Format) String() string {
	switch f {
	case Format_JSON:
		return "json"
	case Format_YAML:
		return "yaml"
	}

	panic("unreachable")
}

// Picks the format from the file extension: .yaml and .yml files are YAML, anything else is JSON
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return Format_YAML
	default:
		return Format_JSON
	}
}

// Parses a format name
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json":
		return Format_JSON, nil
	case "yaml", "yml":
		return Format_YAML, nil
	}

	return 0, fmt.Errorf("unknown instruction set format '%v'", name)
}
