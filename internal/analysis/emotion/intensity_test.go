package emotion

import (
	"strings"
	"testing"
)

func TestFixedIntensityTable(t *testing.T) {
	want := map[Category]int{Joy: 80, Sadness: 75, Anxiety: 70, Anger: 85, Neutral: 50}
	for c, expected := range want {
		if got := FixedIntensity(c); got != expected {
			t.Fatalf("FixedIntensity(%s) = %d, want %d", c, got, expected)
		}
	}
}

func TestFeatureIntensityEmptyText(t *testing.T) {
	if got := FeatureIntensity(""); got != 50 {
		t.Fatalf("expected base 50 for empty text, got %d", got)
	}
}

func TestFeatureIntensityExample(t *testing.T) {
	// 50 + 3*10 + 20*3/16 = 83.75
	got := FeatureIntensity("I am SO happy!!!")
	if got != 84 {
		t.Fatalf("expected 84, got %d", got)
	}
}

func TestFeatureIntensityClampsHigh(t *testing.T) {
	if got := FeatureIntensity("NO!!!!!!!!"); got != 100 {
		t.Fatalf("expected clamp to 100, got %d", got)
	}
}

func TestScoreAlwaysInRange(t *testing.T) {
	inputs := []string{"", "a", "!", strings.Repeat("!", 500), strings.Repeat("A", 1000), "héllo wörld ÄÖÜ"}
	for _, text := range inputs {
		for _, c := range Categories() {
			for _, policy := range []Policy{PolicyFixed, PolicyFeature} {
				got := Score(text, c, policy)
				if got < 0 || got > 100 {
					t.Fatalf("Score(%q,%s,%d) = %d out of range", text, c, policy, got)
				}
			}
		}
	}
}

func TestFeatureIntensityFloor(t *testing.T) {
	if got := FeatureIntensity("quiet words"); got < 30 {
		t.Fatalf("expected floor of 30, got %d", got)
	}
}

func TestClampIntensity(t *testing.T) {
	if ClampIntensity(-5) != 0 || ClampIntensity(250) != 100 || ClampIntensity(42) != 42 {
		t.Fatal("ClampIntensity did not clamp as expected")
	}
}
