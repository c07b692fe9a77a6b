package timeslot

import (
	"fmt"
	"net/url"
	"time"
)

// PlaceholderTitle marks a slot that has no assigned subject.
const PlaceholderTitle = "Trống"

// DefaultDuration is how long a study block runs within its hour.
const DefaultDuration = 50 * time.Minute

// fallbackTitles fills slots the caller left untitled, in order.
var fallbackTitles = []string{
	"Toán", "Ngữ Văn", "Tiếng Anh", "Vật Lý", "Hóa Học", "Sinh Học",
	"Lịch Sử", "Địa Lý", "Tin Học", "GDCD", "Công Nghệ", "Ôn Tập",
}

// Slot is one schedulable hour-aligned unit of a day.
type Slot struct {
	Index      int
	Title      string
	StartTime  time.Time
	EndTime    time.Time
	VideoURL   string // YouTube search, native language
	VideoURLEn string // YouTube search, English
}

// TimeRange renders the slot boundaries as "07:00 - 07:50".
func (s Slot) TimeRange() string {
	return fmt.Sprintf("%s - %s", s.StartTime.Format("15:04"), s.EndTime.Format("15:04"))
}

// IsEmpty reports whether the slot carries no real subject.
func (s Slot) IsEmpty() bool {
	return s.Title == "" || s.Title == PlaceholderTitle
}

// GenerateOptions controls slot generation for one day.
type GenerateOptions struct {
	Count     int           // number of slots, default 24
	StartHour int           // hour of the first slot
	Duration  time.Duration // study block length, default 50 minutes
	Titles    []string      // per-slot titles; short lists are padded
}

// Generate builds the ordered slot sequence for the given local day.
// Exactly opts.Count slots are returned; slot i starts at StartHour+i and
// ends Duration later. Untitled slots fall back to the static subject list,
// then to the placeholder. Pure; date is expected to be local midnight.
func Generate(day time.Time, opts GenerateOptions) []Slot {
	count := opts.Count
	if count <= 0 {
		count = 24
	}
	duration := opts.Duration
	if duration <= 0 {
		duration = DefaultDuration
	}

	slots := make([]Slot, 0, count)
	for i := 0; i < count; i++ {
		title := titleAt(opts.Titles, i)
		start := day.Add(time.Duration(opts.StartHour+i) * time.Hour)
		vi, en := SearchLinks(title)

		slots = append(slots, Slot{
			Index:      i,
			Title:      title,
			StartTime:  start,
			EndTime:    start.Add(duration),
			VideoURL:   vi,
			VideoURLEn: en,
		})
	}
	return slots
}

// titleAt picks the caller's title, then the fallback list, then the placeholder.
func titleAt(titles []string, i int) string {
	if i < len(titles) && titles[i] != "" {
		return titles[i]
	}
	if i < len(fallbackTitles) {
		return fallbackTitles[i]
	}
	return PlaceholderTitle
}

// FallbackTitle returns the default subject for slot position i.
func FallbackTitle(i int) string {
	if i < len(fallbackTitles) {
		return fallbackTitles[i]
	}
	return PlaceholderTitle
}

// SearchLinks derives the two YouTube search URLs for a title. Links are
// always regenerated from the current title, never stored independently.
func SearchLinks(title string) (native, english string) {
	if title == "" || title == PlaceholderTitle {
		return "", ""
	}
	base := "https://www.youtube.com/results?search_query="
	native = base + url.QueryEscape(title+" bài giảng")
	english = base + url.QueryEscape(title+" lesson in english")
	return native, english
}
