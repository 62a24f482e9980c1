package exchange

import "testing"

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"68245.10000000", 68245.1},
		{"0.00001234", 0.00001234},
		{" 42 ", 42},
		{"", 0},
		{"abc", 0},
	}

	for _, tt := range tests {
		if got := ParseDecimal(tt.in); got != tt.want {
			t.Errorf("ParseDecimal(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPairToSymbol(t *testing.T) {
	tests := []struct {
		base, quote, want string
	}{
		{"BTC", "USDT", "BTCUSDT"},
		{"eth", "usdt", "ETHUSDT"},
		{" sol ", "USDC", "SOLUSDC"},
	}

	for _, tt := range tests {
		if got := PairToSymbol(tt.base, tt.quote); got != tt.want {
			t.Errorf("PairToSymbol(%q, %q) = %q, want %q", tt.base, tt.quote, got, tt.want)
		}
	}
}
