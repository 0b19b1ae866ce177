package logging

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// DefaultGlitchIntensity is the noise probability used by the CLI banner.
const DefaultGlitchIntensity = 0.4

var glitchGlyphs = []rune{
	'█', '▓', '▒', '░', '▄', '▀', '▐', '▌', '▄',
	'|', '/', '\\', '#', '@', '&', '?', '!',
}

var glitchPalette = []Category{
	CategoryError, CategorySuccess, CategoryWarning,
	CategoryInfo, CategoryMagenta, CategoryCyan,
}

const (
	glitchNoiseDelay = 50 * time.Millisecond
	glitchCharDelay  = 75 * time.Millisecond
)

// Glitch emits the pretty-printed values character by character, in random
// palette colors, interleaving noise glyphs with probability intensity.
// It writes straight to the animation stream, bypassing both record sinks,
// and blocks for the whole animation unless ctx is cancelled. With
// animation disabled the text is emitted plainly and no clock is touched.
func (l *Logger) Glitch(ctx context.Context, intensity float64, values ...any) error {
	for _, v := range values {
		for _, ch := range Pretty(v) {
			if err := ctx.Err(); err != nil {
				return err
			}
			if !l.animate {
				fmt.Fprint(l.anim, string(ch))
				continue
			}
			if rand.Float64() < intensity {
				fmt.Fprint(l.anim, glitchStyle(CategoryWhite).Render(string(glitchGlyphs[rand.IntN(len(glitchGlyphs))])))
				if err := sleepCtx(ctx, glitchNoiseDelay); err != nil {
					return err
				}
			}
			cat := glitchPalette[rand.IntN(len(glitchPalette))]
			fmt.Fprint(l.anim, glitchStyle(cat).Render(string(ch)))
			if err := sleepCtx(ctx, glitchCharDelay); err != nil {
				return err
			}
		}
	}
	return nil
}

// glitchStyle colors without the bold modifier the record formatter adds.
func glitchStyle(cat Category) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(categoryColors[cat])
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
