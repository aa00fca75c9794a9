package util //nolint:revive // package name util hosts shared formatting helpers used across CLI output

import (
	"fmt"
	"math"
	"strconv"
)

// FormatMoney formats an amount in rupees for display, with Indian digit
// grouping and no paise. Returns "—" for negative amounts, which only occur
// in corrupt data.
func FormatMoney(amount float64) string {
	if amount < 0 {
		return "—"
	}
	return "₹" + groupIndian(int64(math.Round(amount)))
}

// groupIndian inserts commas in the Indian numbering style: the last three
// digits form one group, every two digits after that form another
// (12,34,567).
func groupIndian(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	head, tail := s[:len(s)-3], s[len(s)-3:]
	out := tail
	for len(head) > 2 {
		out = head[len(head)-2:] + "," + out
		head = head[:len(head)-2]
	}
	return head + "," + out
}

// FormatPlanDuration renders a plan length in the units members think in.
func FormatPlanDuration(days int) string {
	switch days {
	case 30:
		return "1 Month"
	case 90:
		return "3 Months"
	case 180:
		return "6 Months"
	case 365:
		return "1 Year"
	default:
		return fmt.Sprintf("%d Days", days)
	}
}

// FormatOptional renders a nullable string field for table output.
func FormatOptional(s *string) string {
	if s == nil || *s == "" {
		return "—"
	}
	return *s
}
