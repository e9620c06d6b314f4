package enhance

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// Limits bound the provider usage of one analysis
type Limits struct {
	MaxCalls         int `validate:"gt=0"`
	MaxTokensPerCall int `validate:"gt=0"`
	MaxTotalTokens   int `validate:"gt=0"`
}

// Budget tracks calls and tokens against Limits. A Budget belongs to one
// orchestrator and one analysis and is not safe for concurrent use.
type Budget struct {
	limits     Limits
	callsUsed  int
	tokensUsed int
}

// NewBudget returns an empty budget.
func NewBudget(limits Limits) *Budget {
	return &Budget{limits: limits}
}

// EstimateTokens approximates input plus output tokens for a prompt:
// one token per four characters, times 1.5.
func EstimateTokens(system, user string) int {
	chars := utf8.RuneCountInString(system) + utf8.RuneCountInString(user)
	input := math.Ceil(float64(chars) / 4)
	return int(math.Ceil(input * 1.5))
}

// Check reports whether one more call of the estimated size fits.
func (b *Budget) Check(estimate int) error {
	switch {
	case b.callsUsed >= b.limits.MaxCalls:
		return &BudgetError{Message: fmt.Sprintf("call limit of %d reached", b.limits.MaxCalls)}
	case estimate > b.limits.MaxTokensPerCall:
		return &BudgetError{Message: fmt.Sprintf("estimated %d tokens exceeds the per-call limit of %d", estimate, b.limits.MaxTokensPerCall)}
	case b.tokensUsed+estimate > b.limits.MaxTotalTokens:
		return &BudgetError{Message: fmt.Sprintf("estimated %d tokens exceeds the remaining %d of %d", estimate, b.limits.MaxTotalTokens-b.tokensUsed, b.limits.MaxTotalTokens)}
	}
	return nil
}

// RecordCall counts a dispatched call.
func (b *Budget) RecordCall() {
	b.callsUsed++
}

// RecordTokens adds tokens spent by a successful call.
func (b *Budget) RecordTokens(n int) {
	if n > 0 {
		b.tokensUsed += n
	}
}

// CallsUsed returns the number of dispatched calls.
func (b *Budget) CallsUsed() int { return b.callsUsed }

// TokensUsed returns the tokens recorded so far.
func (b *Budget) TokensUsed() int { return b.tokensUsed }
