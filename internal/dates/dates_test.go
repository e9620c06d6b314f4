package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
}

func TestResolver_Find(t *testing.T) {
	r := NewResolver(fixedNow)

	tests := []struct {
		name    string
		line    string
		months  int
		current bool
	}{
		{"month names", "Engineer, Jan 2020 - Dec 2020", 12, false},
		{"full month names", "March 2019 to May 2019", 3, false},
		{"present", "Senior Engineer (Jan 2020 - Present)", 54, true},
		{"current lowercase", "jan 2024 – current", 6, true},
		{"year only", "2018 - 2019", 24, false},
		{"slash dates", "01/2021 - 06/2021", 6, false},
		{"iso dates", "2022-03 — 2022-04", 2, false},
		{"abbreviated with dot", "Sept. 2020 - Oct. 2020", 2, false},
		{"reversed", "2022 - 2020", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dr, span, ok := r.Find(tt.line)
			require.True(t, ok)
			assert.Equal(t, tt.months, dr.Months)
			assert.Equal(t, tt.current, dr.Current)
			assert.Equal(t, dr.Raw, tt.line[span[0]:span[1]])
		})
	}
}

func TestResolver_FindNoRange(t *testing.T) {
	r := NewResolver(fixedNow)
	for _, line := range []string{"Built APIs in Go", "Since 2020", "13/2020 - 14/2020", ""} {
		_, _, ok := r.Find(line)
		assert.False(t, ok, line)
	}
}

func TestResolver_NilNowUsesClock(t *testing.T) {
	dr, _, ok := Resolver{}.Find("Jan 2000 - Present")
	require.True(t, ok)
	assert.Greater(t, dr.Months, 12*20)
}

func TestTotalYears(t *testing.T) {
	assert.Equal(t, 0.0, TotalYears(nil))
	assert.Equal(t, 1.5, TotalYears([]DateRange{{Months: 12}, {Months: 6}}))
	assert.Equal(t, 0.58, TotalYears([]DateRange{{Months: 7}}))
}

func TestTotalYears_OverlapIsNotDeduplicated(t *testing.T) {
	r := NewResolver(fixedNow)
	a, _, _ := r.Find("Jan 2020 - Dec 2020")
	b, _, _ := r.Find("Jun 2020 - Dec 2020")
	assert.Equal(t, 1.58, TotalYears([]DateRange{a, b}))
}

func TestResolver_FindRejectsImplausibleYears(t *testing.T) {
	r := NewResolver(fixedNow)
	for _, line := range []string{
		"Cut p99 latency from 1500-2000 ms to 200 ms",
		"Handled 1949 - 1960 archive records",
		"Roadmap for 2026 - 2030",
		"Ticket x2019-2020",
	} {
		_, _, ok := r.Find(line)
		assert.False(t, ok, line)
	}
}

func TestResolver_FindSkipsToPlausibleRange(t *testing.T) {
	r := NewResolver(fixedNow)

	dr, _, ok := r.Find("Batch sizes 1500-2000, Acme 2019 - 2020")
	require.True(t, ok)
	assert.Equal(t, "2019 - 2020", dr.Raw)
	assert.Equal(t, 24, dr.Months)

	dr, _, ok = r.Find("Jan 2025 - Present")
	require.True(t, ok)
	assert.Equal(t, 0, dr.Months)
}
