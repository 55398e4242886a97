package beanfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads path and decodes it according to its extension:
// .yaml and .yml as YAML, .hcl as HCL.
func Load(path string) (*Document, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml", ".hcl":
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("beanfile: %w", err)
	}

	if ext == ".hcl" {
		return DecodeHCL(data, path)
	}
	return DecodeYAML(data)
}
