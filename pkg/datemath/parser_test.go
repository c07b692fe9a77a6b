package datemath_test

import (
	"testing"
	"time"

	"study-slot-scheduler/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParseDate(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")

	got, err := parser.ParseDate("2025-01-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	if _, err := parser.ParseDate("10/01/2025"); err == nil {
		t.Errorf("expected error for malformed date")
	}
	if _, err := parser.ParseDate(""); err == nil {
		t.Errorf("expected error for empty date")
	}
}

func TestExpandRange(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")

	tests := []struct {
		name string
		from string
		to   string
		want []string
	}{
		{
			name: "Ascending range includes both endpoints",
			from: "2025-01-10",
			to:   "2025-01-12",
			want: []string{"2025-01-10", "2025-01-11", "2025-01-12"},
		},
		{
			name: "Swapped endpoints still ascend",
			from: "2025-01-12",
			to:   "2025-01-10",
			want: []string{"2025-01-10", "2025-01-11", "2025-01-12"},
		},
		{
			name: "Single day range",
			from: "2025-01-10",
			to:   "2025-01-10",
			want: []string{"2025-01-10"},
		},
		{
			name: "Crosses month boundary",
			from: "2025-01-30",
			to:   "2025-02-01",
			want: []string{"2025-01-30", "2025-01-31", "2025-02-01"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.ExpandRange(tt.from, tt.to)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d dates, got %d: %v", len(tt.want), len(got), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("index %d: expected %q, got %q", i, tt.want[i], got[i])
				}
			}
		})
	}

	if _, err := parser.ExpandRange("2025-01-10", "bad"); err == nil {
		t.Errorf("expected error for malformed endpoint")
	}
}

func TestNormalizeDates(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")

	got, err := parser.NormalizeDates([]string{"2025-01-12", "2025-01-10", "2025-01-10"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"2025-01-10", "2025-01-12"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("index %d: expected %q, got %q", i, want[i], got[i])
		}
	}

	if _, err := parser.NormalizeDates([]string{"not-a-date"}); err == nil {
		t.Errorf("expected error for invalid date in list")
	}
}

func TestPaddedWindow(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")

	min, max, err := parser.PaddedWindow("2025-01-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantMin := time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC)
	wantMax := time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC)
	if !min.Equal(wantMin) {
		t.Errorf("expected window start %v, got %v", wantMin, min)
	}
	if !max.Equal(wantMax) {
		t.Errorf("expected window end %v, got %v", wantMax, max)
	}
}

func TestSameLocalDate(t *testing.T) {
	parser, _ := datemath.NewParser("Asia/Ho_Chi_Minh")

	// 18:00 UTC on Jan 9 is 01:00 on Jan 10 in UTC+7.
	ts := time.Date(2025, 1, 9, 18, 0, 0, 0, time.UTC)
	if !parser.SameLocalDate(ts, "2025-01-10") {
		t.Errorf("expected %v to fall on 2025-01-10 local", ts)
	}
	if parser.SameLocalDate(ts, "2025-01-09") {
		t.Errorf("expected %v not to fall on 2025-01-09 local", ts)
	}
}

func TestAt(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")

	got, err := parser.At("2025-01-10", 7, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2025, 1, 10, 7, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
