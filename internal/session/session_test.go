package session

import (
	"os"
	"testing"

	"github.com/skimline/skimline/internal/scrollstate"
)

// newTestStore points HOME at a temp dir so the test never touches the real
// platform data directory.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })
	return Open("skimline_test")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)
	if store.manager == nil {
		t.Skip("session storage unavailable in this environment")
	}

	want := scrollstate.State{Offset: -120.5, Length: 2400}
	if err := store.SaveScrollState("/traces/demo.json", want); err != nil {
		t.Fatalf("SaveScrollState: %v", err)
	}

	got, ok := store.LoadScrollState("/traces/demo.json")
	if !ok {
		t.Fatal("LoadScrollState found nothing after save")
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestLoadMissingTrace(t *testing.T) {
	store := newTestStore(t)
	if store.manager == nil {
		t.Skip("session storage unavailable in this environment")
	}

	if _, ok := store.LoadScrollState("never-saved"); ok {
		t.Fatal("LoadScrollState reported a state that was never saved")
	}
}

func TestTracesWithDistinctNamesDoNotCollide(t *testing.T) {
	store := newTestStore(t)
	if store.manager == nil {
		t.Skip("session storage unavailable in this environment")
	}

	a := scrollstate.State{Offset: -1, Length: 100}
	b := scrollstate.State{Offset: -2, Length: 200}
	if err := store.SaveScrollState("a.json", a); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveScrollState("b.json", b); err != nil {
		t.Fatal(err)
	}

	if got, _ := store.LoadScrollState("a.json"); got != a {
		t.Fatalf("a.json: got %+v, want %+v", got, a)
	}
	if got, _ := store.LoadScrollState("b.json"); got != b {
		t.Fatalf("b.json: got %+v, want %+v", got, b)
	}
}

func TestDegradedStoreIsInert(t *testing.T) {
	store := &Store{}

	if err := store.SaveScrollState("x", scrollstate.State{Offset: -1, Length: 2}); err != nil {
		t.Fatalf("degraded save should be a no-op, got: %v", err)
	}
	if _, ok := store.LoadScrollState("x"); ok {
		t.Fatal("degraded load should find nothing")
	}
}

func TestPropNameIsStorageSafe(t *testing.T) {
	got := propName("/traces/demo run.json")
	want := "-traces-demo-run.json"
	if got != want {
		t.Fatalf("propName: got %q, want %q", got, want)
	}
}
