package persona

import "testing"

func TestResolveFallsBackToDefault(t *testing.T) {
	store := NewMemoryStore(Seed())

	if got := Resolve(store, "coach"); got.ID != "coach" {
		t.Fatalf("expected coach, got %s", got.ID)
	}
	if got := Resolve(store, "missing"); got.ID != DefaultID {
		t.Fatalf("expected default persona, got %s", got.ID)
	}
}

func TestResolveEmptyStore(t *testing.T) {
	got := Resolve(NewMemoryStore(nil), "")
	if got.ID != DefaultID || got.OpeningLine == "" {
		t.Fatalf("expected built-in default persona, got %+v", got)
	}
}
