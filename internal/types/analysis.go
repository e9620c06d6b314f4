package types

// ATSBreakdown holds the four component scores, each in [0, 100]
type ATSBreakdown struct {
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
	Keywords   float64 `json:"keywords"`
	Education  float64 `json:"education"`
}

// ATSAnalysisResult is the only value returned to callers of an analysis
type ATSAnalysisResult struct {
	Score            float64      `json:"score"`
	Breakdown        ATSBreakdown `json:"breakdown"`
	MatchedKeywords  []string     `json:"matchedKeywords"`
	MissingKeywords  []string     `json:"missingKeywords"`
	OverusedKeywords []string     `json:"overusedKeywords"`
	Suggestions      []string     `json:"suggestions"`
	Warnings         []string     `json:"warnings"`
}
