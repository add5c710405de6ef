package currency

import (
	"math"
	"strconv"
	"strings"
)

// FormatINR renders an amount in rupees with Indian digit grouping:
// the last three digits form one group, the rest pair off (12,34,567).
func FormatINR(amount float64) string {
	rounded := math.Round(amount)

	negative := rounded < 0
	if negative {
		rounded = -rounded
	}

	formatted := groupIndian(strconv.FormatFloat(rounded, 'f', 0, 64))

	result := "₹" + formatted
	if negative {
		result = "-" + result
	}

	return result
}

func groupIndian(s string) string {
	if len(s) <= 3 {
		return s
	}

	head := s[:len(s)-3]
	tail := s[len(s)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)

	return strings.Join(groups, ",") + "," + tail
}
