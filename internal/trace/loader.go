package trace

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads and validates a trace from a JSON file.
func Load(path string) (*Trace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read trace file: %w", err)
	}

	var t Trace
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("cannot parse trace file %s: %w", path, err)
	}
	if t.Name == "" {
		t.Name = path // fall back to the file path for session keying
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid trace in %s: %w", path, err)
	}
	return &t, nil
}
