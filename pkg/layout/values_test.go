package layout

import "testing"

func TestNewRange(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   Range
	}{
		{"empty", nil, Range{0, 1}},
		{"spread", []float64{10, 30, 20}, Range{10, 30}},
		{"all equal widens", []float64{5, 5, 5}, Range{4, 6}},
		{"single value widens", []float64{-2}, Range{-3, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewRange(tt.values)
			if got != tt.want {
				t.Errorf("NewRange(%v) = %+v, want %+v", tt.values, got, tt.want)
			}
			if got.Min >= got.Max {
				t.Errorf("range %+v must satisfy Min < Max", got)
			}
		})
	}
}

func TestLinearMap(t *testing.T) {
	tests := []struct {
		name                string
		v, inMin, inMax     float64
		outMin, outMax, want float64
	}{
		{"low end", 10, 10, 30, 6, 36, 6},
		{"high end", 30, 10, 30, 6, 36, 36},
		{"middle", 20, 10, 30, 6, 36, 21},
		{"extrapolates above", 40, 10, 30, 6, 36, 51},
		{"extrapolates below", 0, 10, 30, 6, 36, -9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LinearMap(tt.v, tt.inMin, tt.inMax, tt.outMin, tt.outMax); got != tt.want {
				t.Errorf("LinearMap() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseValues(t *testing.T) {
	vals := ParseValues([]string{"10", "abc", " 30 ", "", "20.5"})

	want := []float64{10, 10, 30, 10, 20.5}
	for i, w := range want {
		if vals.Numbers[i] != w {
			t.Errorf("Numbers[%d] = %v, want %v", i, vals.Numbers[i], w)
		}
	}
	if vals.Range != (Range{10, 30}) {
		t.Errorf("Range = %+v, want {10 30}", vals.Range)
	}
	if len(vals.Failed) != 2 || vals.Failed[0] != 1 || vals.Failed[1] != 3 {
		t.Errorf("Failed = %v, want [1 3]", vals.Failed)
	}
}

func TestParseValuesDegenerateFallback(t *testing.T) {
	vals := ParseValues([]string{"5", "abc", "5"})
	if vals.Range != (Range{4, 6}) {
		t.Fatalf("Range = %+v, want {4 6}", vals.Range)
	}
	if vals.Numbers[1] != vals.Range.Min {
		t.Errorf("Numbers[1] = %v, want Range.Min %v", vals.Numbers[1], vals.Range.Min)
	}
}

func TestParseValuesNoneNumeric(t *testing.T) {
	vals := ParseValues([]string{"a", "b"})
	if vals.Range != (Range{0, 1}) {
		t.Errorf("Range = %+v, want {0 1}", vals.Range)
	}
	for i, v := range vals.Numbers {
		if v != 0 {
			t.Errorf("Numbers[%d] = %v, want 0", i, v)
		}
	}
}

func TestParseFloatPrefix(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"42", 42, true},
		{"-1.5", -1.5, true},
		{"12px", 12, true},
		{".5kg", 0.5, true},
		{"3e2x", 300, true},
		{"7e", 7, true},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"Infinity", 0, false},
		{"-Infinity", 0, false},
		{"-", 0, false},
		{"x1", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseFloat(tt.in)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("parseFloat(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
