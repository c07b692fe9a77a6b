package timeslot

import (
	"regexp"
	"strings"
)

var parenRe = regexp.MustCompile(`\([^)]*\)`)

// ParseBulkTitles splits a comma-separated string into exactly n slot titles.
// Each item is trimmed, parenthesized text is stripped, and only the first two
// whitespace-separated words are kept. Input order is preserved; extra items
// are dropped and any shortfall is padded from the fallback subject list.
func ParseBulkTitles(raw string, n int) []string {
	titles := make([]string, 0, n)

	for _, item := range strings.Split(raw, ",") {
		if len(titles) == n {
			break
		}
		title := shortTitle(item)
		if title == "" {
			continue
		}
		titles = append(titles, title)
	}

	for i := len(titles); i < n; i++ {
		titles = append(titles, FallbackTitle(i))
	}
	return titles
}

// shortTitle normalizes one raw item into a short slot title.
func shortTitle(item string) string {
	item = parenRe.ReplaceAllString(item, "")
	words := strings.Fields(item)
	if len(words) > 2 {
		words = words[:2]
	}
	return strings.Join(words, " ")
}
