package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatINR formats an amount with Indian digit grouping: 150000 -> "1,50,000".
// Fractional amounts are truncated; scheme benefit amounts are whole rupees.
func FormatINR(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	s := strconv.FormatInt(int64(amount), 10)
	if len(s) > 3 {
		head := s[:len(s)-3]
		tail := s[len(s)-3:]

		var parts []string
		for len(head) > 2 {
			parts = append([]string{head[len(head)-2:]}, parts...)
			head = head[:len(head)-2]
		}
		if head != "" {
			parts = append([]string{head}, parts...)
		}
		s = strings.Join(parts, ",") + "," + tail
	}

	if neg {
		return "-" + s
	}
	return s
}

// FormatPercent renders a ratio as a percentage with one decimal: 0.04 -> "4.0%".
func FormatPercent(ratio float64) string {
	return fmt.Sprintf("%.1f%%", ratio*100)
}
