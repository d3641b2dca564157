// Package config provides the configuration loader for debugdump.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/debugdump/internal/core/domain"
	"go.trai.ch/debugdump/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration file at path. A missing file yields the defaults.
func (l *Loader) Load(path string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is chosen by the user
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	if err := l.apply(cfg, &file, filepath.Dir(path)); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return cfg, nil
}

func (l *Loader) apply(cfg *domain.Config, file *File, dir string) error {
	switch kind := domain.BackendKind(file.Backend); kind {
	case "":
	case domain.BackendRPM, domain.BackendInventory:
		cfg.Backend.Kind = kind
	default:
		return zerr.With(zerr.Wrap(domain.ErrUnknownBackend, "invalid configuration"), "backend", file.Backend)
	}

	if file.Inventory != "" {
		cfg.Backend.InventoryPath = file.Inventory
		if !filepath.IsAbs(file.Inventory) {
			cfg.Backend.InventoryPath = filepath.Join(dir, file.Inventory)
		}
	}
	if file.Inventory != "" && cfg.Backend.Kind != domain.BackendInventory && l.Logger != nil {
		l.Logger.Warn("inventory is ignored by the " + string(cfg.Backend.Kind) + " backend")
	}
	if file.RPM.RPM != "" {
		cfg.Backend.RPMBinary = file.RPM.RPM
	}
	if file.RPM.DNF != "" {
		cfg.Backend.DNFBinary = file.RPM.DNF
	}
	cfg.Excludes = file.Excludes

	if file.Restore != nil && file.Restore.FilterTypes != nil {
		filters, err := domain.ParseFilterTypes(file.Restore.FilterTypes...)
		if err != nil {
			return err
		}
		cfg.FilterTypes = filters
	}
	return nil
}
