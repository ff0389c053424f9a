package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file searched for in the working
// directory.
const FileName = ".lint-staged.yml"

// altFileName is accepted as a fallback spelling.
const altFileName = ".lint-staged.yaml"

// ErrNotFound is returned when no configuration file exists. Callers fall
// back to built-in defaults.
var ErrNotFound = errors.New("no " + FileName + " found")

// Strategy names accepted in the strategy field.
const (
	StrategyPatch = "patch"
	StrategyTree  = "tree"
)

// Config holds project settings. Every field is optional; command-line
// flags override whatever the file sets.
type Config struct {
	// PatchFile overrides the default patch file name.
	PatchFile string `yaml:"patch-file,omitempty"`
	// GitDir points git at a repository outside the working directory.
	GitDir string `yaml:"git-dir,omitempty"`
	// Strategy selects how unstaged changes are isolated: patch or tree.
	Strategy string `yaml:"strategy,omitempty"`
}

// Load reads and parses a configuration file from the given path.
// Returns ErrNotFound if the file does not exist.
func Load(path string) (*Config, error) {
	path = filepath.Clean(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDir looks for a configuration file in dir, trying FileName first and
// the .yaml spelling second. Returns ErrNotFound when neither exists.
func LoadDir(dir string) (*Config, error) {
	for _, name := range []string{FileName, altFileName} {
		cfg, err := Load(filepath.Join(dir, name))
		if errors.Is(err, ErrNotFound) {
			continue
		}
		return cfg, err
	}
	return nil, ErrNotFound
}

// validate rejects values the engine cannot act on.
func (c *Config) validate() error {
	switch c.Strategy {
	case "", StrategyPatch, StrategyTree:
	default:
		return fmt.Errorf("invalid strategy %q: must be %q or %q", c.Strategy, StrategyPatch, StrategyTree)
	}
	return nil
}
