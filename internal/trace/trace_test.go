package trace

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		trace   Trace
		wantErr bool
	}{
		{
			name: "valid",
			trace: Trace{
				Name:     "t",
				Duration: 100,
				Tracks: []Track{{
					Label:  "a",
					Spans:  []Span{{Name: "s", Start: 10, Duration: 20}},
					Events: []Event{{Name: "e", At: 50}},
				}},
			},
		},
		{
			name:    "zero duration",
			trace:   Trace{Name: "t", Duration: 0},
			wantErr: true,
		},
		{
			name: "negative span start",
			trace: Trace{Name: "t", Duration: 100, Tracks: []Track{{
				Spans: []Span{{Start: -1, Duration: 5}},
			}}},
			wantErr: true,
		},
		{
			name: "span past trace end",
			trace: Trace{Name: "t", Duration: 100, Tracks: []Track{{
				Spans: []Span{{Start: 90, Duration: 20}},
			}}},
			wantErr: true,
		},
		{
			name: "event outside range",
			trace: Trace{Name: "t", Duration: 100, Tracks: []Track{{
				Events: []Event{{At: 150}},
			}}},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.trace.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(42, 4, 16)
	b := Generate(42, 4, 16)

	if a.Duration != b.Duration {
		t.Errorf("durations differ: %v vs %v", a.Duration, b.Duration)
	}
	if a.SpanCount() != b.SpanCount() {
		t.Fatalf("span counts differ: %d vs %d", a.SpanCount(), b.SpanCount())
	}
	if len(a.Tracks) != 4 {
		t.Fatalf("expected 4 tracks, got %d", len(a.Tracks))
	}
	for ti := range a.Tracks {
		for si := range a.Tracks[ti].Spans {
			if a.Tracks[ti].Spans[si] != b.Tracks[ti].Spans[si] {
				t.Fatalf("track %d span %d differs across identically-seeded runs", ti, si)
			}
		}
	}
}

func TestGenerateIsValid(t *testing.T) {
	for _, seed := range []int64{1, 7, 12345} {
		tr := Generate(seed, 6, 32)
		if err := tr.Validate(); err != nil {
			t.Errorf("seed %d generated an invalid trace: %v", seed, err)
		}
		if tr.SpanCount() != 6*32 {
			t.Errorf("seed %d: expected %d spans, got %d", seed, 6*32, tr.SpanCount())
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trace.json")
	contents := `{
		"name": "sample",
		"duration": 250,
		"tracks": [
			{
				"label": "main",
				"spans": [{"name": "parse", "start": 0, "duration": 100, "category": 1}],
				"events": [{"name": "gc", "at": 120, "category": 2}]
			}
		]
	}`
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	tr, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tr.Name != "sample" || tr.Duration != 250 {
		t.Errorf("got name=%q duration=%v", tr.Name, tr.Duration)
	}
	if tr.SpanCount() != 1 || len(tr.Tracks[0].Events) != 1 {
		t.Errorf("unexpected trace contents: %+v", tr)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()

	badJSON := filepath.Join(dir, "bad.json")
	os.WriteFile(badJSON, []byte("{nope"), 0644)
	if _, err := Load(badJSON); err == nil {
		t.Error("expected error for malformed JSON")
	}

	badTrace := filepath.Join(dir, "badtrace.json")
	os.WriteFile(badTrace, []byte(`{"name": "x", "duration": -5, "tracks": []}`), 0644)
	if _, err := Load(badTrace); err == nil {
		t.Error("expected error for invalid trace")
	}

	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadDefaultsNameToPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "unnamed.json")
	os.WriteFile(path, []byte(`{"duration": 10, "tracks": []}`), 0644)

	tr, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tr.Name != path {
		t.Errorf("name = %q, want the file path %q", tr.Name, path)
	}
}
