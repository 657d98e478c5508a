// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// LoadTuning reads a JSON tuning file. Fields missing from the file keep their default values.
func LoadTuning(path string) (Tuning, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("failed to read tuning file: %w", err)
	}
	return ParseTuning(file)
}

// ParseTuning decodes JSON tuning data on top of DefaultTuning and validates the result.
func ParseTuning(data []byte) (Tuning, error) {
	t := DefaultTuning()
	if err := json.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("failed to unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}

	log.Printf("Loaded tuning: %dx%d cells, %.0f resources, defender cost %.0f",
		t.Columns(), t.Rows(), t.InitialResources, t.DefenderCost)
	return t, nil
}
