package delta

import "testing"

func ptr(v float64) *float64 { return &v }

func TestCompute(t *testing.T) {
	tests := []struct {
		name     string
		previous *float64
		current  float64
		wantAbs  float64
		wantPct  string
		wantPos  bool
	}{
		{"no previous", nil, 51000, 0, "0.00", true},
		{"rise", ptr(50000), 51000, 1000, "2.00", true},
		{"fall", ptr(50000), 49000, -1000, "2.00", false},
		{"unchanged", ptr(42), 42, 0, "0.00", true},
		{"zero previous", ptr(0), 10, 10, "0.00", true},
		{"fractional", ptr(3), 4, 1, "33.33", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Compute(tt.previous, tt.current)
			if c.Abs != tt.wantAbs {
				t.Errorf("Abs = %v, want %v", c.Abs, tt.wantAbs)
			}
			if got := Percent(c); got != tt.wantPct {
				t.Errorf("Percent = %q, want %q", got, tt.wantPct)
			}
			if c.Positive != tt.wantPos {
				t.Errorf("Positive = %v, want %v", c.Positive, tt.wantPos)
			}
		})
	}
}

func TestAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{51000.5, "51,000.50"},
		{1234567.891, "1,234,567.89"},
		{0, "0.00"},
		{999.999, "1,000.00"},
		{12.3, "12.30"},
	}

	for _, tt := range tests {
		if got := Amount(tt.in); got != tt.want {
			t.Errorf("Amount(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
