package datemath

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// Parser converts date strings to absolute time.Time values in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone location.
func (p *Parser) Location() *time.Location {
	return p.location
}

// ParseDate converts a "YYYY-MM-DD" string to local midnight of that day.
func (p *Parser) ParseDate(date string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(date), p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return t, nil
}

// FormatDate renders a timestamp as the local "YYYY-MM-DD" calendar date.
func (p *Parser) FormatDate(t time.Time) string {
	return t.In(p.location).Format(DateLayout)
}

// SameLocalDate reports whether t falls on the given local calendar date string.
func (p *Parser) SameLocalDate(t time.Time, date string) bool {
	return p.FormatDate(t) == date
}

// ExpandRange returns every date between from and to inclusive, ascending,
// regardless of which endpoint is chronologically first.
func (p *Parser) ExpandRange(from, to string) ([]string, error) {
	start, err := p.ParseDate(from)
	if err != nil {
		return nil, err
	}
	end, err := p.ParseDate(to)
	if err != nil {
		return nil, err
	}

	if end.Before(start) {
		start, end = end, start
	}

	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(DateLayout))
	}
	return dates, nil
}

// NormalizeDates parses, dedupes and sorts a list of date strings ascending.
// A list with no valid dates returns an error naming the first bad entry.
func (p *Parser) NormalizeDates(dates []string) ([]string, error) {
	seen := make(map[string]bool, len(dates))
	out := make([]string, 0, len(dates))
	for _, raw := range dates {
		d, err := p.ParseDate(raw)
		if err != nil {
			return nil, err
		}
		formatted := d.Format(DateLayout)
		if seen[formatted] {
			continue
		}
		seen[formatted] = true
		out = append(out, formatted)
	}
	sort.Strings(out)
	return out, nil
}

// DayWindow returns [local midnight, next local midnight) for the given date.
func (p *Parser) DayWindow(date string) (time.Time, time.Time, error) {
	start, err := p.ParseDate(date)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.AddDate(0, 0, 1), nil
}

// PaddedWindow returns a query window widened by one day on each side of the
// given date. Callers must post-filter by local calendar date; the padding
// guards against the remote account's timezone drifting from ours.
func (p *Parser) PaddedWindow(date string) (time.Time, time.Time, error) {
	start, end, err := p.DayWindow(date)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start.AddDate(0, 0, -1), end.AddDate(0, 0, 1), nil
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// At returns the given local date at hour:min.
func (p *Parser) At(date string, hour, min int) (time.Time, error) {
	day, err := p.ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, p.location), nil
}
