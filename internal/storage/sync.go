package storage

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/repsheet/internal/models"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// dump is the file layout for export and restore. TOML needs a table at the
// top level, so the collection is wrapped.
type dump struct {
	Routines []models.Routine `toml:"routine" yaml:"routines"`
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// Export writes the whole collection to outputPath, as YAML when the file
// ends in .yaml/.yml and as TOML otherwise.
func (r *Repository) Export(outputPath string) error {
	routines, err := r.store.Load()
	if err != nil {
		return fmt.Errorf("loading routines: %w", err)
	}

	var buf bytes.Buffer
	if isYAML(outputPath) {
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(dump{Routines: routines}); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
	} else {
		if err := toml.NewEncoder(&buf).Encode(dump{Routines: routines}); err != nil {
			return fmt.Errorf("encoding TOML: %w", err)
		}
	}

	// Make the output path absolute relative to the current directory.
	outputPath, err = filepath.Abs(outputPath)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}
	r.log.Debug("exported routines", zap.String("path", outputPath), zap.Int("routines", len(routines)))
	return nil
}

// Restore replaces the whole collection with the contents of a file written
// by Export.
func (r *Repository) Restore(filePath string) ([]models.Routine, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("Reading file %s: %w", filePath, err)
	}

	var d dump
	if isYAML(filePath) {
		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("Decoding YAML: %w", err)
		}
	} else {
		if _, err := toml.Decode(string(data), &d); err != nil {
			return nil, fmt.Errorf("Decoding TOML: %w", err)
		}
	}

	seen := make(map[string]bool, len(d.Routines))
	for _, routine := range d.Routines {
		if routine.ID == "" {
			return nil, fmt.Errorf("routine %q has no id", routine.Name)
		}
		if seen[routine.ID] {
			return nil, fmt.Errorf("duplicate routine id %s", routine.ID)
		}
		seen[routine.ID] = true
	}

	if d.Routines == nil {
		d.Routines = []models.Routine{}
	}
	if err := r.store.Save(d.Routines); err != nil {
		return nil, fmt.Errorf("Failed to save routines: %w", err)
	}
	return d.Routines, nil
}
