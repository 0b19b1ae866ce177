package logging

import (
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestProgress_PassThrough(t *testing.T) {
	l, _, _ := newTestLogger(t)
	in := []int{10, 20, 30, 40, 50}
	got := slices.Collect(Progress(l, slices.Values(in), "pondering", len(in)))
	if diff := cmp.Diff(in, got); diff != "" {
		t.Fatalf("items changed in transit (-want +got):\n%s", diff)
	}
}

func TestProgress_RendersDescriptionAndFraction(t *testing.T) {
	l, console, _ := newTestLogger(t)
	in := []string{"a", "b", "c"}
	for range Progress(l, slices.Values(in), "pondering", len(in)) {
	}
	out := console.String()
	if !strings.Contains(out, "pondering: ") {
		t.Fatalf("missing description: %q", out)
	}
	if !strings.Contains(out, "3/3") {
		t.Fatalf("missing completed fraction: %q", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Fatalf("missing final newline: %q", out)
	}
}

func TestProgress_UnknownTotalShowsCount(t *testing.T) {
	l, console, _ := newTestLogger(t)
	for range Progress(l, slices.Values([]int{1, 2}), "", 0) {
	}
	if !strings.Contains(console.String(), "2 [") {
		t.Fatalf("missing running count: %q", console.String())
	}
}

func TestProgress_EarlyBreakStillFinishesLine(t *testing.T) {
	l, console, _ := newTestLogger(t)
	for v := range Progress(l, slices.Values([]int{1, 2, 3}), "partial", 3) {
		if v == 2 {
			break
		}
	}
	if !strings.HasSuffix(console.String(), "\n") {
		t.Fatalf("missing final newline after break: %q", console.String())
	}
}

func TestProgress_LongDescriptionTruncated(t *testing.T) {
	l, console, _ := newTestLogger(t)
	desc := strings.Repeat("deep thought ", 10)
	for range Progress(l, slices.Values([]int{1}), desc, 1) {
	}
	if strings.Contains(console.String(), desc) {
		t.Fatalf("description not truncated: %q", console.String())
	}
	if !strings.Contains(console.String(), "…") {
		t.Fatalf("missing ellipsis: %q", console.String())
	}
}

func TestClockFormat(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{65 * time.Second, "01:05"},
		{time.Hour + time.Minute + time.Second, "1:01:01"},
		{-time.Second, "?"},
	}
	for _, c := range cases {
		if got := clockFormat(c.d); got != c.want {
			t.Fatalf("clockFormat(%v) = %q, want %q", c.d, got, c.want)
		}
	}
}

func TestEstimateRemaining(t *testing.T) {
	if got := estimateRemaining(10*time.Second, 2, 4); got != 10*time.Second {
		t.Fatalf("estimateRemaining = %v, want 10s", got)
	}
	if got := estimateRemaining(10*time.Second, 0, 4); got >= 0 {
		t.Fatalf("expected unknown estimate before first item, got %v", got)
	}
}
