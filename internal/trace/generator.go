package trace

import (
	"fmt"
	"math/rand"
)

// Generation tuning. Spans are laid out left to right per track with random
// gaps, so the result looks like a plausible profiler recording.
const (
	genMinSpanMs  = 2.0
	genMaxSpanMs  = 120.0
	genMaxGapMs   = 30.0
	genCategories = 8
)

// Generate produces a deterministic demo trace from the given seed. The same
// seed always yields the same trace, which keeps session restore meaningful
// for generated traces too.
func Generate(seed int64, tracks, spansPerTrack int) *Trace {
	r := rand.New(rand.NewSource(seed))

	t := &Trace{
		Name:   fmt.Sprintf("demo-%d", seed),
		Tracks: make([]Track, tracks),
	}

	var maxEnd float64
	for ti := range t.Tracks {
		track := Track{Label: fmt.Sprintf("track %d", ti)}

		cursor := r.Float64() * genMaxGapMs
		for si := 0; si < spansPerTrack; si++ {
			duration := genMinSpanMs + r.Float64()*(genMaxSpanMs-genMinSpanMs)
			track.Spans = append(track.Spans, Span{
				Name:     fmt.Sprintf("span %d.%d", ti, si),
				Start:    cursor,
				Duration: duration,
				Category: r.Intn(genCategories),
			})
			cursor += duration + r.Float64()*genMaxGapMs
		}
		if cursor > maxEnd {
			maxEnd = cursor
		}

		// Sprinkle a few instant events between the spans.
		for ei := 0; ei < spansPerTrack/4; ei++ {
			track.Events = append(track.Events, Event{
				Name:     fmt.Sprintf("event %d.%d", ti, ei),
				At:       r.Float64() * cursor,
				Category: r.Intn(genCategories),
			})
		}

		t.Tracks[ti] = track
	}

	t.Duration = maxEnd
	return t
}
