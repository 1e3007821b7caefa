package workhours_test

import (
	"testing"
	"time"

	"interview-scheduler/pkg/workhours"
)

func mustPolicy(t *testing.T) *workhours.Policy {
	t.Helper()
	p, err := workhours.New("Asia/Kolkata", 9, 18, 15)
	if err != nil {
		t.Fatalf("policy: %v", err)
	}
	return p
}

func TestNew(t *testing.T) {
	if _, err := workhours.New("Not/AZone", 9, 18, 15); err == nil {
		t.Errorf("expected error for bogus timezone")
	}
	if _, err := workhours.New("UTC", 18, 9, 15); err == nil {
		t.Errorf("expected error for inverted window")
	}
	if _, err := workhours.New("UTC", 9, 18, 0); err == nil {
		t.Errorf("expected error for zero granularity")
	}
}

func TestFirstBoundary(t *testing.T) {
	p := mustPolicy(t)
	loc := p.Location()

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "mid-day rounds up to next tick",
			now:  time.Date(2025, 6, 11, 10, 7, 33, 0, loc), // Wednesday
			want: time.Date(2025, 6, 11, 10, 15, 0, 0, loc),
		},
		{
			name: "already aligned stays put",
			now:  time.Date(2025, 6, 11, 10, 30, 0, 0, loc),
			want: time.Date(2025, 6, 11, 10, 30, 0, 0, loc),
		},
		{
			name: "before work clamps to start hour",
			now:  time.Date(2025, 6, 11, 6, 42, 0, 0, loc),
			want: time.Date(2025, 6, 11, 9, 0, 0, 0, loc),
		},
		{
			name: "after work rolls to next day start",
			now:  time.Date(2025, 6, 11, 19, 5, 0, 0, loc),
			want: time.Date(2025, 6, 12, 9, 0, 0, 0, loc),
		},
		{
			name: "exactly end of day rolls over",
			now:  time.Date(2025, 6, 11, 18, 0, 0, 0, loc),
			want: time.Date(2025, 6, 12, 9, 0, 0, 0, loc),
		},
		{
			name: "friday 17:50 rounds to 18:00 (weekend skip happens in the scan)",
			now:  time.Date(2025, 6, 13, 17, 50, 0, 0, loc), // Friday
			want: time.Date(2025, 6, 13, 18, 0, 0, 0, loc),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := p.FirstBoundary(tc.now)
			if !got.Equal(tc.want) {
				t.Errorf("FirstBoundary(%v) = %v, want %v", tc.now, got, tc.want)
			}
		})
	}
}

func TestFirstBoundaryConvertsZone(t *testing.T) {
	p := mustPolicy(t)
	loc := p.Location()

	// 04:30 UTC == 10:00 IST; already on a tick.
	now := time.Date(2025, 6, 11, 4, 30, 0, 0, time.UTC)
	want := time.Date(2025, 6, 11, 10, 0, 0, 0, loc)
	if got := p.FirstBoundary(now); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestWeekendHelpers(t *testing.T) {
	p := mustPolicy(t)
	loc := p.Location()

	sat := time.Date(2025, 6, 14, 11, 0, 0, 0, loc)
	sun := time.Date(2025, 6, 15, 11, 0, 0, 0, loc)
	mon := time.Date(2025, 6, 16, 9, 0, 0, 0, loc)

	if !p.IsWeekend(sat) || !p.IsWeekend(sun) {
		t.Errorf("saturday/sunday should be weekend")
	}
	if p.IsWeekend(mon) {
		t.Errorf("monday should not be weekend")
	}

	if got := p.NextMondayStart(sat); !got.Equal(mon) {
		t.Errorf("NextMondayStart(sat) = %v, want %v", got, mon)
	}
	if got := p.NextMondayStart(sun); !got.Equal(mon) {
		t.Errorf("NextMondayStart(sun) = %v, want %v", got, mon)
	}
}

func TestNextDayStart(t *testing.T) {
	p := mustPolicy(t)
	loc := p.Location()

	in := time.Date(2025, 6, 11, 18, 45, 0, 0, loc)
	want := time.Date(2025, 6, 12, 9, 0, 0, 0, loc)
	if got := p.NextDayStart(in); !got.Equal(want) {
		t.Errorf("NextDayStart = %v, want %v", got, want)
	}
}

func TestAfterHours(t *testing.T) {
	p := mustPolicy(t)
	loc := p.Location()

	if !p.AfterHours(time.Date(2025, 6, 11, 18, 0, 0, 0, loc)) {
		t.Errorf("18:00 should be after hours")
	}
	if p.AfterHours(time.Date(2025, 6, 11, 17, 45, 0, 0, loc)) {
		t.Errorf("17:45 should be within hours")
	}
}
