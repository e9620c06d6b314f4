package enhance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateTokens(t *testing.T) {
	tests := []struct {
		system, user string
		want         int
	}{
		{"", "", 0},
		// ceil(10/4)=3, then 3*1.5 rounds up
		{"abcdefgh", "ij", 5},
		{"abcd", "efgh", 3},
		// counted in runes
		{"", "ééé", 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EstimateTokens(tt.system, tt.user))
	}
}

func TestBudget_Check(t *testing.T) {
	b := NewBudget(Limits{MaxCalls: 2, MaxTokensPerCall: 100, MaxTotalTokens: 150})

	require.NoError(t, b.Check(100))

	err := b.Check(101)
	var budgetErr *BudgetError
	require.ErrorAs(t, err, &budgetErr)
	assert.Contains(t, err.Error(), "per-call limit of 100")

	b.RecordCall()
	b.RecordTokens(100)
	err = b.Check(60)
	require.ErrorAs(t, err, &budgetErr)
	assert.Contains(t, err.Error(), "remaining 50 of 150")
	require.NoError(t, b.Check(50))

	b.RecordCall()
	err = b.Check(1)
	require.ErrorAs(t, err, &budgetErr)
	assert.Contains(t, err.Error(), "call limit of 2 reached")

	assert.Equal(t, 2, b.CallsUsed())
	assert.Equal(t, 100, b.TokensUsed())
}

func TestBudget_RecordTokensIgnoresNegative(t *testing.T) {
	b := NewBudget(Limits{MaxCalls: 1, MaxTokensPerCall: 1, MaxTotalTokens: 1})
	b.RecordTokens(-5)
	assert.Zero(t, b.TokensUsed())
}
