package dataset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ============================================================================
// LOCATOR — explicit, caller-supplied source paths
// ============================================================================
// Directory scanning for "the first matching file" is fragile under multiple
// candidates. The locator makes every source path explicit; catalog discovery
// by extension remains available but refuses to guess when more than one
// candidate exists.
// ============================================================================

// Default well-known file names, working-directory relative.
const (
	DefaultOrdersFile = "orders.csv"
	DefaultUsersFile  = "users.json"
	OutputFile        = "final_food_delivery_dataset.csv"
	LocatorFile       = "feastline.yaml"
	catalogExtension  = ".sql"
)

// ErrMissingInput marks an absent required source file.
var ErrMissingInput = errors.New("required input missing")

// Locator names the three source files of one pipeline run.
type Locator struct {
	Orders  string `yaml:"orders"`
	Users   string `yaml:"users"`
	Catalog string `yaml:"catalog"`
}

// LoadLocator resolves source paths for a run rooted at dir.
// If a feastline.yaml exists there it overrides the defaults; a catalog left
// unset is discovered by extension.
func LoadLocator(dir string) (Locator, error) {
	loc := Locator{
		Orders: filepath.Join(dir, DefaultOrdersFile),
		Users:  filepath.Join(dir, DefaultUsersFile),
	}

	cfgPath := filepath.Join(dir, LocatorFile)
	if data, err := os.ReadFile(cfgPath); err == nil {
		var cfg Locator
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Locator{}, fmt.Errorf("%s: %w", cfgPath, err)
		}
		if cfg.Orders != "" {
			loc.Orders = filepath.Join(dir, cfg.Orders)
		}
		if cfg.Users != "" {
			loc.Users = filepath.Join(dir, cfg.Users)
		}
		if cfg.Catalog != "" {
			loc.Catalog = filepath.Join(dir, cfg.Catalog)
		}
	} else if !os.IsNotExist(err) {
		return Locator{}, fmt.Errorf("%s: %w", cfgPath, err)
	}

	if loc.Catalog == "" {
		catalog, err := discoverCatalog(dir)
		if err != nil {
			return Locator{}, err
		}
		loc.Catalog = catalog
	}

	return loc, nil
}

// Validate checks that every source exists. The run must abort before any
// output is produced when a source is absent.
func (l Locator) Validate() error {
	for _, path := range []string{l.Orders, l.Users, l.Catalog} {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("%w: %s", ErrMissingInput, filepath.Base(path))
		}
	}
	return nil
}

// discoverCatalog finds the catalog by extension. Zero candidates is a
// missing input; more than one demands explicit disambiguation via the
// locator file instead of an arbitrary pick.
func discoverCatalog(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to scan %s for catalog files: %w", dir, err)
	}

	var candidates []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), catalogExtension) {
			candidates = append(candidates, e.Name())
		}
	}
	sort.Strings(candidates)

	switch len(candidates) {
	case 0:
		return "", fmt.Errorf("%w: no %s catalog file found in %s", ErrMissingInput, catalogExtension, dir)
	case 1:
		return filepath.Join(dir, candidates[0]), nil
	default:
		return "", fmt.Errorf("ambiguous catalog: %d candidate %s files (%s); set catalog in %s",
			len(candidates), catalogExtension, strings.Join(candidates, ", "), LocatorFile)
	}
}
