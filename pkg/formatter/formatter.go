package formatter

import (
	"fmt"
	"strconv"
	"time"
)

// FormatNumber converts an integer to a string with commas as thousands separators.
// Example: 1234567 -> "1,234,567"
func FormatNumber(n int) string {
	s := strconv.Itoa(n)
	if n < 0 {
		s = s[1:]
	}

	le := len(s)
	if le <= 3 {
		if n < 0 {
			return "-" + s
		}
		return s
	}

	sepCount := (le - 1) / 3

	res := make([]byte, le+sepCount)

	j := len(res) - 1
	for i := le - 1; i >= 0; i-- {
		res[j] = s[i]
		j--
		if (le-i)%3 == 0 && i > 0 {
			res[j] = ','
			j--
		}
	}

	if n < 0 {
		return "-" + string(res)
	}
	return string(res)
}

// TimeAgo renders the age of t relative to now in whole hours or days.
// Under an hour is "now", under a day is "<h>h", otherwise "<d>d".
func TimeAgo(now, t time.Time) string {
	hours := int(now.Sub(t) / time.Hour)
	switch {
	case hours < 1:
		return "now"
	case hours < 24:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dd", hours/24)
	}
}

// MessageTime renders a chat timestamp on a 12 hour clock, e.g. "3:04 PM".
func MessageTime(t time.Time) string {
	return t.Format("3:04 PM")
}

// Likes renders a like counter line, e.g. "1,204 likes".
func Likes(n int) string {
	return FormatNumber(n) + " likes"
}
