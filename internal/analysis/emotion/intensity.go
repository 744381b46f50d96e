package emotion

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Policy selects how intensity is derived.
type Policy int

const (
	// PolicyFixed uses the hard-coded base intensity of the category.
	PolicyFixed Policy = iota
	// PolicyFeature derives intensity from exclamation marks and capitalisation.
	PolicyFeature
)

const (
	MinIntensity = 0
	MaxIntensity = 100

	featureBase         = 50
	featureFloor        = 30
	exclamationWeight   = 10
	uppercaseRatioScale = 20
)

var fixedIntensity = [numCategories]int{
	Joy:     80,
	Sadness: 75,
	Anxiety: 70,
	Anger:   85,
	Neutral: 50,
}

// FixedIntensity 返回类别的固定强度。
func FixedIntensity(c Category) int {
	if !c.Valid() {
		return fixedIntensity[Neutral]
	}
	return fixedIntensity[c]
}

// FeatureIntensity scores text as 50 + 10 per "!" + 20 × uppercase ratio, clamped to [30,100].
func FeatureIntensity(text string) int {
	total := utf8.RuneCountInString(text)
	exclamations := strings.Count(text, "!")

	var ratio float64
	if total > 0 {
		upper := 0
		for _, r := range text {
			if r >= 'A' && r <= 'Z' {
				upper++
			}
		}
		ratio = float64(upper) / float64(total)
	}

	score := featureBase + float64(exclamations*exclamationWeight) + ratio*uppercaseRatioScale
	score = math.Min(MaxIntensity, math.Max(featureFloor, score))
	return int(math.Round(score))
}

// Score applies the selected policy and clamps the result.
func Score(text string, c Category, policy Policy) int {
	switch policy {
	case PolicyFeature:
		return ClampIntensity(FeatureIntensity(text))
	default:
		return ClampIntensity(FixedIntensity(c))
	}
}

// ClampIntensity bounds a score to [0,100].
func ClampIntensity(score int) int {
	switch {
	case score < MinIntensity:
		return MinIntensity
	case score > MaxIntensity:
		return MaxIntensity
	default:
		return score
	}
}
