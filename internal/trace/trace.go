// Package trace defines the timeline data model: a trace is a set of named
// horizontal tracks, each carrying duration spans and instant events, all
// timestamped in milliseconds from the trace origin. The package also loads
// traces from JSON files and generates deterministic demo traces.
package trace

import "fmt"

// Span is a named interval on a track.
type Span struct {
	Name     string  `json:"name"`
	Start    float64 `json:"start"`    // ms from trace origin
	Duration float64 `json:"duration"` // ms
	Category int     `json:"category"` // palette category index
}

// End returns the span's end timestamp.
func (s Span) End() float64 { return s.Start + s.Duration }

// Event is a zero-duration marker on a track.
type Event struct {
	Name     string  `json:"name"`
	At       float64 `json:"at"` // ms from trace origin
	Category int     `json:"category"`
}

// Track is one horizontal row of the timeline.
type Track struct {
	Label  string  `json:"label"`
	Spans  []Span  `json:"spans"`
	Events []Event `json:"events,omitempty"`
}

// Trace is a complete recording.
type Trace struct {
	Name     string  `json:"name"`
	Duration float64 `json:"duration"` // ms; the horizontal extent of the timeline
	Tracks   []Track `json:"tracks"`
}

// SpanCount returns the total number of spans across all tracks.
func (t *Trace) SpanCount() int {
	n := 0
	for _, track := range t.Tracks {
		n += len(track.Spans)
	}
	return n
}

// Validate checks the structural invariants the views rely on: a positive
// duration, non-negative span geometry, and no span or event outside the
// trace's time range.
func (t *Trace) Validate() error {
	if t.Duration <= 0 {
		return fmt.Errorf("trace %q has non-positive duration %v", t.Name, t.Duration)
	}
	for ti, track := range t.Tracks {
		for si, span := range track.Spans {
			if span.Start < 0 || span.Duration < 0 {
				return fmt.Errorf("track %d span %d (%q) has negative geometry: start=%v duration=%v",
					ti, si, span.Name, span.Start, span.Duration)
			}
			if span.End() > t.Duration {
				return fmt.Errorf("track %d span %d (%q) ends at %v, past trace duration %v",
					ti, si, span.Name, span.End(), t.Duration)
			}
		}
		for ei, event := range track.Events {
			if event.At < 0 || event.At > t.Duration {
				return fmt.Errorf("track %d event %d (%q) at %v is outside [0, %v]",
					ti, ei, event.Name, event.At, t.Duration)
			}
		}
	}
	return nil
}
