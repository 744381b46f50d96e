package emotion

import "testing"

func TestClassifySingleCategory(t *testing.T) {
	cases := map[string]Category{
		"I'm so happy today":         Joy,
		"That was an AWESOME game":   Joy,
		"I feel sad and lonely":      Sadness,
		"everything is awful":        Sadness,
		"I'm worried about the exam": Anxiety,
		"starting to panic a bit":    Anxiety,
		"I am so angry right now":    Anger,
		"I hate waiting in line":     Anger,
	}

	for text, want := range cases {
		if got := Classify(text); got != want {
			t.Fatalf("Classify(%q) = %s, want %s", text, got, want)
		}
	}
}

func TestClassifyJoyWinsOverAnger(t *testing.T) {
	if got := Classify("I love my job but I hate my commute"); got != Joy {
		t.Fatalf("expected joy to win the tie-break, got %s", got)
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	if got := Classify("nervous and furious"); got != Anxiety {
		t.Fatalf("expected anxiety before anger, got %s", got)
	}
	if got := Classify("upset and scared"); got != Sadness {
		t.Fatalf("expected sadness before anxiety, got %s", got)
	}
}

func TestClassifyNoMatchIsNeutral(t *testing.T) {
	for _, text := range []string{"", "   ", "The meeting is at noon", "what time is it"} {
		if got := Classify(text); got != Neutral {
			t.Fatalf("Classify(%q) = %s, want neutral", text, got)
		}
	}
}

func TestAnalyzeUsesFixedIntensity(t *testing.T) {
	got := Analyze("I am FURIOUS!!!")
	if got.Category != Anger || got.Intensity != 85 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		parsed, ok := ParseCategory("  " + c.String() + " ")
		if !ok || parsed != c {
			t.Fatalf("ParseCategory(%q) = %s,%v", c.String(), parsed, ok)
		}
	}
	if _, ok := ParseCategory("happy"); ok {
		t.Fatal("expected unknown category to fail parsing")
	}
}

func TestMetadataCoversEveryCategory(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range Categories() {
		meta := c.Metadata()
		if meta.Name == "" || meta.Label == "" || meta.Accent == "" || meta.Icon == "" {
			t.Fatalf("incomplete metadata for %d: %+v", c, meta)
		}
		if seen[meta.Name] {
			t.Fatalf("duplicate category name %s", meta.Name)
		}
		seen[meta.Name] = true
	}
	if len(seen) != 5 {
		t.Fatalf("expected 5 categories, got %d", len(seen))
	}
}

func TestCategoryTextRoundTrip(t *testing.T) {
	var c Category
	if err := c.UnmarshalText([]byte("anxiety")); err != nil {
		t.Fatalf("UnmarshalText err: %v", err)
	}
	if c != Anxiety {
		t.Fatalf("expected anxiety, got %s", c)
	}
	if err := c.UnmarshalText([]byte("bored")); err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestCannedReplyNonEmpty(t *testing.T) {
	for _, c := range Categories() {
		if CannedReply(c) == "" {
			t.Fatalf("empty canned reply for %s", c)
		}
	}
	if CannedReply(Category(42)) != CannedReply(Neutral) {
		t.Fatal("expected unknown category to fall back to neutral reply")
	}
}
