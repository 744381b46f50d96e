package emotion

import "strings"

type keywordSet struct {
	category Category
	keywords []string
}

// keywordSets 按优先级排列：同时命中多个类别时取最靠前的一个。
var keywordSets = []keywordSet{
	{Joy, []string{"happy", "great", "awesome", "amazing", "excellent", "wonderful", "love", "good"}},
	{Sadness, []string{"sad", "depressed", "down", "unhappy", "terrible", "awful", "cry", "upset"}},
	{Anxiety, []string{"worried", "anxious", "nervous", "stress", "overwhelm", "panic", "fear", "scared"}},
	{Anger, []string{"angry", "mad", "furious", "annoyed", "hate", "irritated", "frustrated"}},
}

// Classify 根据关键词子串匹配给出情绪类别，无匹配时返回 Neutral。
func Classify(text string) Category {
	normalized := strings.ToLower(text)
	if strings.TrimSpace(normalized) == "" {
		return Neutral
	}

	for _, set := range keywordSets {
		if containsAny(normalized, set.keywords) {
			return set.category
		}
	}
	return Neutral
}

// Analyze runs the local path: lexical classification plus the fixed-per-category intensity.
func Analyze(text string) Result {
	category := Classify(text)
	return Result{Category: category, Intensity: FixedIntensity(category)}
}

func containsAny(text string, words []string) bool {
	for _, word := range words {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}
