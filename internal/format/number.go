package format

import (
	"strconv"
	"strings"
)

// FormatNumberString inserts thousands separators into a decimal integer
// string. A leading minus sign is preserved.
//
// Parameters:
//   - s: The decimal representation of an integer.
//
// Returns:
//   - string: The grouped representation, e.g. "1,234,567".
func FormatNumberString(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}

	var b strings.Builder
	b.Grow(len(sign) + len(s) + len(s)/3)
	b.WriteString(sign)
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > len(sign) {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FormatInt groups the digits of n.
func FormatInt(n int) string {
	return FormatNumberString(strconv.Itoa(n))
}
