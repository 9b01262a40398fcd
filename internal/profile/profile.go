// Package profile persists named configuration snapshots as YAML files
// so frequently used conversion setups can be recalled by name.
package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"

	"shiroink/internal/config"
)

// Store reads and writes profiles under a single directory, one YAML
// file per profile.
type Store struct {
	dir string
}

// NewStore opens a store rooted at dir, creating it if missing.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating profile directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// DefaultDir returns the per-user profile directory.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "shiroink", "profiles"), nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".yaml")
}

// Save writes the serializable fields of cfg under name, replacing any
// existing profile with that name.
func (s *Store) Save(name string, cfg config.Config) error {
	if err := validName(name); err != nil {
		return err
	}

	v := viper.New()
	v.Set("resolution.width", cfg.Resolution.Width)
	v.Set("resolution.height", cfg.Resolution.Height)
	v.Set("rtl", cfg.RightToLeft)
	v.Set("quality", cfg.Quality)
	v.Set("workers", cfg.Workers)
	v.Set("preset", cfg.Preset)
	v.Set("continue_on_error", cfg.ContinueOnError)
	v.Set("max_retries", cfg.MaxRetries)

	if err := v.WriteConfigAs(s.path(name)); err != nil {
		return fmt.Errorf("saving profile %q: %w", name, err)
	}
	return nil
}

// Load reads the named profile over a default configuration. Fields the
// profile does not set keep their defaults.
func (s *Store) Load(name string) (config.Config, error) {
	cfg := config.Default()
	if err := validName(name); err != nil {
		return cfg, err
	}

	v := viper.New()
	v.SetConfigFile(s.path(name))
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("loading profile %q: %w", name, err)
	}

	if v.IsSet("resolution.width") {
		cfg.Resolution.Width = v.GetInt("resolution.width")
	}
	if v.IsSet("resolution.height") {
		cfg.Resolution.Height = v.GetInt("resolution.height")
	}
	if v.IsSet("rtl") {
		cfg.RightToLeft = v.GetBool("rtl")
	}
	if v.IsSet("quality") {
		cfg.Quality = v.GetInt("quality")
	}
	if v.IsSet("workers") {
		cfg.Workers = v.GetInt("workers")
	}
	if v.IsSet("preset") {
		cfg.Preset = v.GetString("preset")
	}
	if v.IsSet("continue_on_error") {
		cfg.ContinueOnError = v.GetBool("continue_on_error")
	}
	if v.IsSet("max_retries") {
		cfg.MaxRetries = v.GetInt("max_retries")
	}
	return cfg, nil
}

// List returns the stored profile names, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), ".yaml") {
			names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
		}
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes the named profile.
func (s *Store) Delete(name string) error {
	if err := validName(name); err != nil {
		return err
	}
	if err := os.Remove(s.path(name)); err != nil {
		return fmt.Errorf("deleting profile %q: %w", name, err)
	}
	return nil
}

func validName(name string) error {
	if name == "" || strings.ContainsAny(name, `/\`) || name != filepath.Base(name) {
		return fmt.Errorf("invalid profile name %q", name)
	}
	return nil
}
