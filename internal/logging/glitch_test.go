package logging

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func TestGlitch_DisabledAnimationWritesPlainText(t *testing.T) {
	l, _, anim := newTestLogger(t)
	if err := l.Glitch(context.Background(), 1.0, "hi there"); err != nil {
		t.Fatalf("Glitch error: %v", err)
	}
	if anim.String() != "hi there" {
		t.Fatalf("unexpected animation output: %q", anim.String())
	}
}

func TestGlitch_PrettyPrintsValues(t *testing.T) {
	l, _, anim := newTestLogger(t)
	if err := l.Glitch(context.Background(), 0, map[string]int{"a": 1}); err != nil {
		t.Fatalf("Glitch error: %v", err)
	}
	if anim.String() != "{\n    \"a\": 1\n}" {
		t.Fatalf("unexpected animation output: %q", anim.String())
	}
}

func TestGlitch_BypassesSinks(t *testing.T) {
	l, console, _ := newTestLogger(t)
	if err := l.Glitch(context.Background(), 1.0, "quiet"); err != nil {
		t.Fatalf("Glitch error: %v", err)
	}
	if console.Len() != 0 {
		t.Fatalf("glitch leaked into console sink: %q", console.String())
	}
	if got := readErrorLog(t, l); got != "" {
		t.Fatalf("glitch leaked into error.log: %q", got)
	}
}

func TestGlitch_CancelledContextStopsAnimation(t *testing.T) {
	anim := &bytes.Buffer{}
	l, err := New(Options{
		Dir:       filepath.Join(t.TempDir(), "logs"),
		Console:   &bytes.Buffer{},
		Animation: anim,
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	defer l.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := l.Glitch(ctx, DefaultGlitchIntensity, "never shown"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if anim.Len() != 0 {
		t.Fatalf("cancelled glitch still wrote output: %q", anim.String())
	}
}
