package emotion

import "testing"

func TestWindowKeepsMostRecent(t *testing.T) {
	w := NewWindow(3)
	for _, c := range []Category{Joy, Sadness, Anxiety, Anger} {
		w.Push(Result{Category: c})
	}

	got := w.Results()
	if len(got) != 3 {
		t.Fatalf("expected 3 results, got %d", len(got))
	}
	want := []Category{Sadness, Anxiety, Anger}
	for i, c := range want {
		if got[i].Category != c {
			t.Fatalf("index %d: expected %s, got %s", i, c, got[i].Category)
		}
	}

	latest, ok := w.Latest()
	if !ok || latest.Category != Anger {
		t.Fatalf("unexpected latest: %+v %v", latest, ok)
	}
}

func TestWindowPartial(t *testing.T) {
	w := NewWindow(0)
	if w.Capacity() != TrendWindow {
		t.Fatalf("expected default capacity %d, got %d", TrendWindow, w.Capacity())
	}
	if _, ok := w.Latest(); ok {
		t.Fatal("expected no latest result on empty window")
	}

	w.Push(Result{Category: Sadness})
	w.Push(Result{Category: Joy})
	if w.Len() != 2 {
		t.Fatalf("expected len 2, got %d", w.Len())
	}
	if w.Trend() != TrendImproving {
		t.Fatalf("expected improving, got %s", w.Trend())
	}
}

func TestWindowReset(t *testing.T) {
	w := NewWindow(2)
	w.Push(Result{Category: Joy})
	w.Push(Result{Category: Joy})
	w.Push(Result{Category: Joy})
	w.Reset()
	if w.Len() != 0 || len(w.Results()) != 0 {
		t.Fatal("expected empty window after reset")
	}
}
