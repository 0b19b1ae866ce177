package logging

import (
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/mattn/go-runewidth"
)

const (
	progressBarWidth  = 40
	progressDescWidth = 24
)

// Progress wraps a sequence so consuming it repaints a single console line
// with the description, a gradient bar, the completed fraction and an
// elapsed/remaining estimate. Items pass through unchanged; nothing reaches
// the file sink. A total of 0 means unknown, which drops the bar and shows
// a running count instead.
func Progress[T any](l *Logger, seq iter.Seq[T], desc string, total int) iter.Seq[T] {
	return func(yield func(T) bool) {
		bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(progressBarWidth), progress.WithoutPercentage())
		start := l.now()
		n := 0
		repaint := func() {
			fmt.Fprint(l.console, "\r"+progressLine(bar, desc, n, total, l.now().Sub(start)))
		}
		repaint()
		for v := range seq {
			if !yield(v) {
				break
			}
			n++
			repaint()
		}
		fmt.Fprintln(l.console)
	}
}

func progressLine(bar progress.Model, desc string, n, total int, elapsed time.Duration) string {
	var b strings.Builder
	if desc != "" {
		b.WriteString(runewidth.Truncate(desc, progressDescWidth, "…"))
		b.WriteString(": ")
	}
	if total <= 0 {
		fmt.Fprintf(&b, "%d [%s]", n, clockFormat(elapsed))
		return b.String()
	}
	frac := float64(n) / float64(total)
	if frac > 1 {
		frac = 1
	}
	b.WriteString(bar.ViewAs(frac))
	fmt.Fprintf(&b, "| %d/%d [%s<%s]", n, total, clockFormat(elapsed), clockFormat(estimateRemaining(elapsed, n, total)))
	return b.String()
}

// estimateRemaining extrapolates from the average pace so far; before the
// first item there is no pace to extrapolate from.
func estimateRemaining(elapsed time.Duration, n, total int) time.Duration {
	if n <= 0 {
		return -1
	}
	return elapsed / time.Duration(n) * time.Duration(total-n)
}

// clockFormat renders durations tqdm-style: MM:SS, or H:MM:SS past an hour.
// Negative means unknown.
func clockFormat(d time.Duration) string {
	if d < 0 {
		return "?"
	}
	secs := int(d.Seconds())
	h, m, s := secs/3600, secs/60%60, secs%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
