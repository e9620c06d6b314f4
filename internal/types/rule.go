package types

// RuleContext is the view handed to rule predicates. Each user rule gets its
// own copy, so changes a predicate makes are never seen by scoring output.
type RuleContext struct {
	Resume           *ParsedResume
	Job              *ParsedJobDescription
	Weights          Weights
	Density          DensityThresholds
	Breakdown        ATSBreakdown
	MatchedKeywords  []string
	OverusedKeywords []string
	MissingRequired  []string
	MissingYears     float64
}

// Rule is a user-supplied penalty. When reports whether it applies.
type Rule struct {
	ID      string
	Penalty float64
	Warning string
	When    func(RuleContext) bool
}

// Clone returns a deep copy of c.
func (c RuleContext) Clone() RuleContext {
	c.Resume = c.Resume.Clone()
	c.Job = c.Job.Clone()
	c.MatchedKeywords = cloneStrings(c.MatchedKeywords)
	c.OverusedKeywords = cloneStrings(c.OverusedKeywords)
	c.MissingRequired = cloneStrings(c.MissingRequired)
	return c
}
