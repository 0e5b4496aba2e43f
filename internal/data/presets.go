package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"bufferstock/internal/config"
	"bufferstock/internal/estimate"
)

// PresetInfo describes one model preset YAML on disk.
type PresetInfo struct {
	ID    string
	Name  string
	File  string
	Model config.ModelConfig
}

// ListModelPresets scans dir for *.yaml model presets, sorted by ID. Files
// that fail to parse are skipped; an unreadable directory is an error.
func ListModelPresets(dir string) ([]PresetInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read preset dir: %w", err)
	}
	out := make([]PresetInfo, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}
		path := filepath.Join(dir, name)
		m, err := config.LoadModelFile(path)
		if err != nil {
			continue
		}
		id := strings.TrimSuffix(strings.TrimSuffix(name, ".yaml"), ".yml")
		display := m.Name
		if display == "" {
			display = id
		}
		out = append(out, PresetInfo{ID: id, Name: display, File: path, Model: m})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// FindModelPreset resolves a preset by ID within dir.
func FindModelPreset(dir, id string) (PresetInfo, error) {
	presets, err := ListModelPresets(dir)
	if err != nil {
		return PresetInfo{}, err
	}
	for _, p := range presets {
		if p.ID == id {
			return p, nil
		}
	}
	return PresetInfo{}, fmt.Errorf("unknown model preset %q", id)
}

// targetsFile matches the JSON shape of empirical distribution files:
//
//	{
//	  "name": "scf_2004_net_worth",
//	  "percentiles": [0.2, 0.4, 0.6, 0.8],
//	  "lorenz": [-0.002, 0.01, 0.05, 0.17]
//	}
type targetsFile struct {
	Name        string    `json:"name"`
	Percentiles []float64 `json:"percentiles"`
	Lorenz      []float64 `json:"lorenz"`
}

// LoadTargetsJSON reads empirical Lorenz targets from a JSON file.
func LoadTargetsJSON(path string) (estimate.Targets, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return estimate.Targets{}, err
	}
	var tf targetsFile
	if err := json.Unmarshal(raw, &tf); err != nil {
		return estimate.Targets{}, err
	}
	t := estimate.Targets{Percentiles: tf.Percentiles, Shares: tf.Lorenz}
	if err := t.Validate(); err != nil {
		return estimate.Targets{}, fmt.Errorf("targets file %s: %w", path, err)
	}
	return t, nil
}
