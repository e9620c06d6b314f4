// Package dates resolves free-text employment date spans into month counts.
package dates

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateRange is one resolved employment span. Months is inclusive of both endpoints.
type DateRange struct {
	Raw     string `json:"raw"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Current bool   `json:"current,omitempty"`
	Months  int    `json:"months"`
}

const monthPattern = `jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?`

const endpointPattern = `(?:(?:` + monthPattern + `)\.?,?\s+\d{4}|\d{1,2}/\d{4}|\d{4}-\d{2}|\d{4})`

var (
	rangePattern = regexp.MustCompile(`(?i)\b(` + endpointPattern + `)\s*(?:-|–|—|to|until)\s*(` + endpointPattern + `|present|current|now|today)\b`)
	monthYear    = regexp.MustCompile(`(?i)^(` + monthPattern + `)\.?,?\s+(\d{4})$`)
	slashDate    = regexp.MustCompile(`^(\d{1,2})/(\d{4})$`)
	isoDate      = regexp.MustCompile(`^(\d{4})-(\d{2})$`)
	yearOnly     = regexp.MustCompile(`^(\d{4})$`)
)

// minYear is the earliest year accepted in an employment range
const minYear = 1950

var monthIndex = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// Resolver turns date text into ranges. Now anchors open-ended ranges such as
// "Jan 2020 - Present"; nil means time.Now.
type Resolver struct {
	Now func() time.Time
}

// NewResolver returns a Resolver anchored at now.
func NewResolver(now func() time.Time) Resolver {
	return Resolver{Now: now}
}

func (r Resolver) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}

// Find returns the first date range on line together with its byte span.
// Ranges with a year before 1950 or after next year are skipped.
func (r Resolver) Find(line string) (DateRange, [2]int, bool) {
	now := r.now()
	for _, loc := range rangePattern.FindAllStringSubmatchIndex(line, -1) {
		if dr, ok := r.resolve(line, loc, now); ok {
			return dr, [2]int{loc[0], loc[1]}, true
		}
	}
	return DateRange{}, [2]int{}, false
}

func (r Resolver) resolve(line string, loc []int, now time.Time) (DateRange, bool) {
	start := line[loc[2]:loc[3]]
	end := line[loc[4]:loc[5]]
	maxYear := now.Year() + 1

	sy, sm, ok := parseEndpoint(start, false)
	if !ok || sy < minYear || sy > maxYear {
		return DateRange{}, false
	}
	dr := DateRange{
		Raw:   line[loc[0]:loc[1]],
		Start: strings.TrimSpace(start),
		End:   strings.TrimSpace(end),
	}

	var ey, em int
	switch strings.ToLower(dr.End) {
	case "present", "current", "now", "today":
		ey, em = now.Year(), int(now.Month())
		dr.Current = true
	default:
		ey, em, ok = parseEndpoint(end, true)
		if !ok || ey < minYear || ey > maxYear {
			return DateRange{}, false
		}
	}
	dr.Months = MonthsBetween(sy, sm, ey, em)
	return dr, true
}

// MonthsBetween counts months from (sy, sm) to (ey, em) inclusive; reversed spans count zero.
func MonthsBetween(sy, sm, ey, em int) int {
	months := (ey-sy)*12 + (em - sm) + 1
	if months < 0 {
		return 0
	}
	return months
}

// parseEndpoint resolves one side of a range. Year-only values resolve to
// January when starting and December when ending.
func parseEndpoint(s string, isEnd bool) (year, month int, ok bool) {
	s = strings.TrimSpace(s)
	if m := monthYear.FindStringSubmatch(s); m != nil {
		year, _ = strconv.Atoi(m[2])
		return year, monthIndex[strings.ToLower(m[1])[:3]], true
	}
	if m := slashDate.FindStringSubmatch(s); m != nil {
		month, _ = strconv.Atoi(m[1])
		year, _ = strconv.Atoi(m[2])
		return year, month, month >= 1 && month <= 12
	}
	if m := isoDate.FindStringSubmatch(s); m != nil {
		year, _ = strconv.Atoi(m[1])
		month, _ = strconv.Atoi(m[2])
		return year, month, month >= 1 && month <= 12
	}
	if m := yearOnly.FindStringSubmatch(s); m != nil {
		year, _ = strconv.Atoi(m[1])
		if isEnd {
			return year, 12, true
		}
		return year, 1, true
	}
	return 0, 0, false
}

// TotalYears sums the month counts of ranges and converts them to years rounded to
// two decimals. Overlapping ranges are counted once per range.
func TotalYears(ranges []DateRange) float64 {
	months := 0
	for _, dr := range ranges {
		months += dr.Months
	}
	return Round2(float64(months) / 12)
}

// Round2 rounds v to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
