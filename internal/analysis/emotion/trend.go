package emotion

// Trend 表示情绪走势。TrendNeutral 表示历史不足，与 Neutral 类别无关。
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendWorsening Trend = "worsening"
	TrendStable    Trend = "stable"
	TrendNeutral   Trend = "neutral"
)

const (
	// TrendWindow is the number of most recent user classifications the trend considers.
	TrendWindow = 5

	recentSpan     = 3
	trendThreshold = 10
)

// valence 把类别映射到一维的"好坏"轴上。
var valence = [numCategories]float64{
	Joy:     100,
	Neutral: 50,
	Anxiety: 30,
	Sadness: 20,
	Anger:   10,
}

// Valence returns the ordinal score used by the trend engine.
func Valence(c Category) float64 {
	if !c.Valid() {
		return valence[Neutral]
	}
	return valence[c]
}

// ComputeTrend compares the mean of the last three entries against the oldest entry
// of the bounded window. history is ordered oldest first.
func ComputeTrend(history []Result) Trend {
	if len(history) > TrendWindow {
		history = history[len(history)-TrendWindow:]
	}
	if len(history) < 2 {
		return TrendNeutral
	}

	recent := history
	if len(recent) > recentSpan {
		recent = recent[len(recent)-recentSpan:]
	}

	var sum float64
	for _, r := range recent {
		sum += Valence(r.Category)
	}
	average := sum / float64(len(recent))
	baseline := Valence(history[0].Category)

	switch {
	case average > baseline+trendThreshold:
		return TrendImproving
	case average < baseline-trendThreshold:
		return TrendWorsening
	default:
		return TrendStable
	}
}

// ComputeTrendNewestFirst is ComputeTrend for histories ordered most recent first.
func ComputeTrendNewestFirst(history []Result) Trend {
	ordered := make([]Result, len(history))
	for i, r := range history {
		ordered[len(history)-1-i] = r
	}
	return ComputeTrend(ordered)
}
