package defs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTuningValid(t *testing.T) {
	tun := DefaultTuning()
	if err := tun.Validate(); err != nil {
		t.Fatalf("default tuning invalid: %v", err)
	}
	if tun.Columns() != 9 || tun.Rows() != 6 || tun.Lanes() != 5 {
		t.Errorf("grid = %dx%d (%d lanes), want 9x6 (5 lanes)", tun.Columns(), tun.Rows(), tun.Lanes())
	}
}

func TestParseTuningKeepsDefaults(t *testing.T) {
	tun, err := ParseTuning([]byte(`{"defender_cost": 150, "blocking_rule": "last-pair"}`))
	if err != nil {
		t.Fatalf("ParseTuning: %v", err)
	}
	if tun.DefenderCost != 150 {
		t.Errorf("DefenderCost = %v, want 150", tun.DefenderCost)
	}
	if tun.BlockingRule != BlockLastPair {
		t.Errorf("BlockingRule = %q, want %q", tun.BlockingRule, BlockLastPair)
	}
	if tun.InitialResources != 300 {
		t.Errorf("InitialResources = %v, want default 300", tun.InitialResources)
	}
}

func TestParseTuningRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"zero cell", `{"cell_size": 0}`},
		{"interval floor above base", `{"min_enemy_interval": 700}`},
		{"inverted speed range", `{"enemy_speed_min": 1, "enemy_speed_max": 0.5}`},
		{"unknown blocking rule", `{"blocking_rule": "sometimes"}`},
		{"no lanes", `{"canvas_height": 100}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTuning([]byte(tt.json))
			if !errors.Is(err, errInvalidTuning) {
				t.Errorf("ParseTuning(%s) error = %v, want errInvalidTuning", tt.json, err)
			}
		})
	}
}

func TestParseTuningMalformed(t *testing.T) {
	if _, err := ParseTuning([]byte(`{"cell_size":`)); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestLoadTuning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.json")
	if err := os.WriteFile(path, []byte(`{"initial_resources": 500}`), 0o644); err != nil {
		t.Fatal(err)
	}
	tun, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	if tun.InitialResources != 500 {
		t.Errorf("InitialResources = %v, want 500", tun.InitialResources)
	}

	if _, err := LoadTuning(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want os.ErrNotExist", err)
	}
}
