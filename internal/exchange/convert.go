package exchange

import (
	"strconv"
	"strings"
)

// ParseDecimal parses an exchange decimal string ("68245.10000000") to a
// float64. Returns 0 for empty or invalid input.
func ParseDecimal(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
