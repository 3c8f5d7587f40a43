package facet

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseDate parses the date formats found in content front matter:
// "2024/03/15", "2024-03-15", "2024/03", "2024" and RFC 3339 timestamps.
// A missing day is the 1st, a missing month is January. ok is false for
// anything else; ParseDate never panics.
func ParseDate(s string) (t time.Time, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts.UTC(), true
	}
	if i := strings.IndexAny(s, "T "); i > 0 {
		s = s[:i]
	}

	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '/' || r == '-' })
	if len(parts) == 0 || len(parts) > 3 {
		return time.Time{}, false
	}

	nums := [3]int{0, 1, 1}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, false
		}
		nums[i] = n
	}
	year, month, day := nums[0], nums[1], nums[2]
	if year <= 0 || month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	t = time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// Reject rollovers such as 2023/02/30.
	if t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// YearOf returns the four-digit year of a raw date, or "" if unparseable.
func YearOf(raw string) string {
	t, ok := ParseDate(raw)
	if !ok {
		return ""
	}
	return strconv.Itoa(t.Year())
}

// MonthOf returns the zero-padded month ("01".."12") of a raw date, or "".
func MonthOf(raw string) string {
	t, ok := ParseDate(raw)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%02d", int(t.Month()))
}

// ByDateDesc orders items newest first. Unparseable dates sort last.
func ByDateDesc[T Item](a, b T) int {
	ta, okA := ParseDate(a.PrimaryDate())
	tb, okB := ParseDate(b.PrimaryDate())
	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return 1
	case !okB:
		return -1
	}
	return tb.Compare(ta)
}
