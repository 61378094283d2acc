package sample

import (
	"regexp"
	"strconv"
	"strings"
)

// leadingNumber matches the numeric prefix of a reading like "48.3" in "48.3'C".
var leadingNumber = regexp.MustCompile(`^[-+]?(\d+\.?\d*|\.\d+)`)

// ParseTemperature extracts the value from probe output such as
// "temp=48.3'C". The text between the first '=' and the following '\''
// is read up to its first non-numeric character. ok is false when the
// output doesn't have that shape.
func ParseTemperature(text string) (value float64, ok bool) {
	_, rest, found := strings.Cut(text, "=")
	if !found {
		return 0, false
	}
	reading, _, found := strings.Cut(rest, "'")
	if !found {
		return 0, false
	}

	num := leadingNumber.FindString(strings.TrimSpace(reading))
	if num == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
