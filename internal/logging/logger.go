package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	clog "github.com/charmbracelet/log"
)

// Category selects the color, emoji and severity of a log record.
type Category string

const (
	CategoryError   Category = "error"
	CategoryWarning Category = "warning"
	CategoryInfo    Category = "info"
	CategorySuccess Category = "success"
	CategoryMagenta Category = "magenta"
	CategoryCyan    Category = "cyan"
	CategoryWhite   Category = "white"
	CategoryBlack   Category = "black"
)

// Palette is based on the bright ANSI range so output survives both dark
// and light terminals.
var categoryColors = map[Category]lipgloss.Color{
	CategoryError:   lipgloss.Color("9"),
	CategoryWarning: lipgloss.Color("11"),
	CategoryInfo:    lipgloss.Color("12"),
	CategorySuccess: lipgloss.Color("10"),
	CategoryMagenta: lipgloss.Color("13"),
	CategoryCyan:    lipgloss.Color("14"),
	CategoryWhite:   lipgloss.Color("15"),
	CategoryBlack:   lipgloss.Color("8"),
}

var categoryEmojis = map[Category]string{
	CategoryError:   "🚨",
	CategoryWarning: "⚠️",
	CategoryInfo:    "ℹ️",
	CategorySuccess: "✅",
	CategoryMagenta: "🔮",
	CategoryCyan:    "🪼",
	CategoryWhite:   "🏳",
	CategoryBlack:   "🏴",
}

const timestampLayout = "2006-01-02 15:04:05"

// Options configures a Logger. The zero value is usable: records go to
// stderr, the glitch animation to stdout, and errors accumulate in
// logs/error.log.
type Options struct {
	// Dir is the log directory, created (with parents) if absent.
	Dir string
	// Console receives formatted records and progress lines.
	Console io.Writer
	// Animation receives the glitch output.
	Animation io.Writer
	// NoAnimation disables glitch timing and noise glyphs entirely so
	// output never depends on the wall clock.
	NoAnimation bool
}

// Logger formats values into colorized, timestamped, emoji-tagged records
// and routes each record through two independently gated sinks: the console
// sink accepts info and above, the file sink only error and above.
type Logger struct {
	dir     string
	file    *os.File
	console io.Writer
	anim    io.Writer
	animate bool

	consoleSink *clog.Logger
	fileSink    *clog.Logger

	now func() time.Time
}

// New opens logs/error.log (append) under opts.Dir and wires both sinks.
// Directory or file creation failures surface here, not per call.
func New(opts Options) (*Logger, error) {
	dir := opts.Dir
	if dir == "" {
		dir = "logs"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(filepath.Join(dir, "error.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	anim := opts.Animation
	if anim == nil {
		anim = os.Stdout
	}
	l := &Logger{
		dir:         dir,
		file:        file,
		console:     console,
		anim:        anim,
		animate:     !opts.NoAnimation,
		consoleSink: newSink(console, clog.InfoLevel),
		fileSink:    newSink(file, clog.ErrorLevel),
		now:         time.Now,
	}
	return l, nil
}

// newSink builds a charmbracelet/log logger that emits records verbatim:
// the decorative formatting already carries timestamp and severity, so the
// sink's own level labels are blanked out.
func newSink(w io.Writer, level clog.Level) *clog.Logger {
	sink := clog.NewWithOptions(w, clog.Options{Level: level})
	styles := clog.DefaultStyles()
	for lvl := range styles.Levels {
		styles.Levels[lvl] = lipgloss.NewStyle()
	}
	sink.SetStyles(styles)
	return sink
}

// Close releases the error-log file handle.
func (l *Logger) Close() error {
	return l.file.Close()
}

// Dir returns the log directory the Logger writes under.
func (l *Logger) Dir() string {
	return l.dir
}

func categoryStyle(cat Category) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(categoryColors[cat])
}

func categoryLevel(cat Category) clog.Level {
	switch cat {
	case CategoryError:
		return clog.ErrorLevel
	case CategoryWarning:
		return clog.WarnLevel
	default:
		return clog.InfoLevel
	}
}

// FormatMessage composes the decorative record for a category: each value
// pretty-printed and rendered bold in the category color, joined by
// newlines, prefixed with the category emoji and a timestamp, padded with
// blank lines. It never fails; unserializable values degrade to a
// placeholder form.
func (l *Logger) FormatMessage(cat Category, values ...any) string {
	style := categoryStyle(cat)
	lines := make([]string, 0, len(values))
	for _, v := range values {
		lines = append(lines, style.Render(Pretty(v)))
	}
	return fmt.Sprintf("\n\n\n%s  %s\n%s\n\n\n",
		categoryEmojis[cat], l.now().Format(timestampLayout), strings.Join(lines, "\n"))
}

// dispatch offers one record to both sinks; each applies its own level
// threshold to the same record.
func (l *Logger) dispatch(lvl clog.Level, msg string) {
	l.consoleSink.Log(lvl, msg)
	l.fileSink.Log(lvl, msg)
}

func (l *Logger) log(cat Category, values ...any) {
	l.dispatch(categoryLevel(cat), l.FormatMessage(cat, values...))
}

// Error logs an error record. 🚨
func (l *Logger) Error(values ...any) {
	l.log(CategoryError, values...)
}

// ErrorCause logs an error record and appends the cause's type, message
// and full rendered trace (pkg/errors values carry their stack via %+v).
func (l *Logger) ErrorCause(cause error, values ...any) {
	msg := l.FormatMessage(CategoryError, values...)
	if cause != nil {
		msg += fmt.Sprintf("\n[%s] %s\n%+v", typeName(cause), cause.Error(), cause)
	}
	l.dispatch(clog.ErrorLevel, msg)
}

// Warning logs a warning record. ⚠️
func (l *Logger) Warning(values ...any) {
	l.log(CategoryWarning, values...)
}

// Info logs an info record. ℹ️
func (l *Logger) Info(values ...any) {
	l.log(CategoryInfo, values...)
}

// Success logs a success record. ✅
func (l *Logger) Success(values ...any) {
	l.log(CategorySuccess, values...)
}

// Magic logs a magical record. 🔮
func (l *Logger) Magic(values ...any) {
	l.log(CategoryMagenta, values...)
}

// Water logs a watery record. 🪼
func (l *Logger) Water(values ...any) {
	l.log(CategoryCyan, values...)
}

// White logs a white record. 🏳
func (l *Logger) White(values ...any) {
	l.log(CategoryWhite, values...)
}

// Black logs a black record. 🏴
func (l *Logger) Black(values ...any) {
	l.log(CategoryBlack, values...)
}
