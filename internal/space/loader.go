package space

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads one YAML definition. Fields the file leaves out keep the
// values from Default.
func LoadFile(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("failed to read space definition: %w", err)
	}
	return Parse(data, path)
}

// Parse decodes a YAML definition. name is only used in error messages and
// as the id when the document has none.
func Parse(data []byte, name string) (Definition, error) {
	d := Default()
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Definition{}, fmt.Errorf("failed to parse space definition %s: %w", name, err)
	}
	if d.ID == "" {
		d.ID = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	}
	d.normalize()
	if err := d.Validate(); err != nil {
		return Definition{}, err
	}
	return d, nil
}

// IsDefinitionFile reports whether name looks like a space definition.
func IsDefinitionFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return !strings.HasPrefix(filepath.Base(name), ".")
	}
	return false
}

// ScanDirectory loads every definition file in dir, in name order. A
// missing directory yields no definitions. Files that fail to load are
// skipped and their errors joined into the returned error, so callers can
// report them and still use the rest.
func ScanDirectory(dir string) ([]Definition, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read spaces directory: %w", err)
	}

	var defs []Definition
	var errs []error
	for _, entry := range entries {
		if entry.IsDir() || !IsDefinitionFile(entry.Name()) {
			continue
		}
		d, err := LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		defs = append(defs, d)
	}
	return defs, errors.Join(errs...)
}

// LoadCatalog returns the built-in spaces overridden and extended by the
// files in dir. An empty dir skips scanning.
func LoadCatalog(dir string) (*Catalog, error) {
	defs := Builtin()
	if dir == "" {
		return NewCatalog(defs...), nil
	}
	extra, err := ScanDirectory(dir)
	return NewCatalog(append(defs, extra...)...), err
}
