package layout

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// Range is the closed value domain of the value column. Min < Max always
// holds for ranges produced by [NewRange].
type Range struct {
	Min, Max float64
}

// NewRange returns the range of values. An empty input yields [0, 1].
// When every value is equal the range is widened by 1 on each side so the
// mapping domain never has zero width.
func NewRange(values []float64) Range {
	if len(values) == 0 {
		return Range{Min: 0, Max: 1}
	}
	r := Range{Min: slices.Min(values), Max: slices.Max(values)}
	if r.Min == r.Max {
		r.Min--
		r.Max++
	}
	return r
}

// LinearMap maps v from [inMin, inMax] onto [outMin, outMax] without clamping.
func LinearMap(v, inMin, inMax, outMin, outMax float64) float64 {
	return outMin + (v-inMin)*(outMax-outMin)/(inMax-inMin)
}

// Values is the parsed value column.
type Values struct {
	Numbers []float64 // One per row; failures hold Range.Min
	Range   Range
	Failed  []int // Row indices whose cell did not parse
}

// ParseValues parses raw cells as floats. Cells that fail to parse, or parse
// to NaN or ±Inf, take Range.Min, after any widening of a degenerate range.
func ParseValues(raws []string) Values {
	parsed := make([]float64, 0, len(raws))
	ok := make([]bool, len(raws))
	nums := make([]float64, len(raws))

	for i, raw := range raws {
		v, good := parseFloat(raw)
		if !good {
			continue
		}
		ok[i], nums[i] = true, v
		parsed = append(parsed, v)
	}

	res := Values{Numbers: nums, Range: NewRange(parsed)}
	for i := range nums {
		if !ok[i] {
			nums[i] = res.Range.Min
			res.Failed = append(res.Failed, i)
		}
	}
	return res
}

// parseFloat accepts a leading numeric prefix the way lenient dataset
// readers do ("12px" is 12), so only cells with no number at all fail.
// Non-finite results fail too.
func parseFloat(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, finite(v)
	}
	end := numericPrefix(s)
	if end == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil || !finite(v) {
		return 0, false
	}
	return v, true
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// numericPrefix returns the length of the longest prefix of s shaped like
// [+-]digits[.digits][e[+-]digits].
func numericPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		if digits+frac > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		exp := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			exp++
		}
		if exp > 0 {
			i = j
		}
	}
	return i
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
