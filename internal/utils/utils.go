package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotADecimal is returned for input that is not a plain decimal number.
var ErrNotADecimal = errors.New("not a decimal number")

// FormatNumber renders a weight the way a user typed it: no trailing zeros,
// no exponent for ordinary values ("135", "62.5").
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ParseDecimal accepts only what a user would type as a number: digits, a
// sign, a decimal point and an optional exponent. NaN, Inf, hex floats and
// underscore separators are rejected, as are values out of float64 range.
func ParseDecimal(s string) (float64, error) {
	if s == "" || strings.IndexFunc(s, notDecimalRune) >= 0 {
		return 0, fmt.Errorf("%w: %q", ErrNotADecimal, s)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotADecimal, s)
	}
	return f, nil
}

func notDecimalRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return false
	case r == '.', r == '+', r == '-', r == 'e', r == 'E':
		return false
	}
	return true
}

// ParseNumber converts user input into a number. Surrounding whitespace is
// ignored and an empty string counts as zero, so clearing a field commits 0.
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return ParseDecimal(s)
}
