package reward

import (
	"regexp"
	"strconv"
	"strings"
)

// rangePattern matches "1,000 - 2,500" and "1000–2500" (hyphen or en-dash)
var rangePattern = regexp.MustCompile(`(\d[\d,]*)\s*[–-]\s*(\d[\d,]*)`)

// MedianFromRange extracts the median reward from text.
// Only the first range in text is used. A bare number (thousands separators
// allowed) is returned as-is. The second return value is false when no
// numeric value could be found.
func MedianFromRange(text string) (float64, bool) {
	if m := rangePattern.FindStringSubmatch(text); m != nil {
		lo, err := parseInt(m[1])
		if err != nil {
			return 0, false
		}
		hi, err := parseInt(m[2])
		if err != nil {
			return 0, false
		}
		return float64(lo+hi) / 2, true
	}

	plain := strings.TrimSpace(stripSeparators(text))
	if !isDigits(plain) {
		return 0, false
	}

	v, err := strconv.ParseFloat(plain, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseInt(s string) (int64, error) {
	return strconv.ParseInt(stripSeparators(s), 10, 64)
}

func stripSeparators(s string) string {
	return strings.ReplaceAll(s, ",", "")
}

// isDigits reports whether s is a non-empty run of ASCII digits
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
