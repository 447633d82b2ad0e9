package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// Color palette
var (
	colorPrimary = lipgloss.Color("#7C3AED") // violet

	colorSuccess = lipgloss.Color("#10B981") // emerald
	colorError   = lipgloss.Color("#EF4444") // red
	colorWarning = lipgloss.Color("#F59E0B") // amber
	colorInfo    = lipgloss.Color("#3B82F6") // blue

	colorMuted  = lipgloss.Color("#6B7280") // gray-500
	colorSubtle = lipgloss.Color("#9CA3AF") // gray-400
	colorText   = lipgloss.Color("#F9FAFB") // gray-50
)

// Styles
var (
	styleSuccess = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	styleError   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	styleWarn    = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	styleInfo    = lipgloss.NewStyle().Foreground(colorInfo).Bold(true)

	styleBold    = lipgloss.NewStyle().Bold(true)
	styleDim     = lipgloss.NewStyle().Foreground(colorMuted)
	stylePrimary = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)

	styleLabel = lipgloss.NewStyle().Foreground(colorSubtle).Width(12)
	styleValue = lipgloss.NewStyle().Foreground(colorText)

	styleHeader = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			MarginBottom(1)
)

// Icons
const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "●"
	iconArrow   = "→"
	iconBullet  = "•"
	iconCall    = "⇄"
)

var (
	mu  sync.Mutex
	out io.Writer = os.Stderr
)

// SetOutput redirects all ui output. It returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := out
	out = w
	return prev
}

func printf(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, format, args...)
}

// Prefix functions return styled prefix strings.
func SuccessPrefix() string { return styleSuccess.Render(iconSuccess) }
func ErrorPrefix() string   { return styleError.Render(iconError) }
func WarnPrefix() string    { return styleWarn.Render(iconWarning) }
func InfoPrefix() string    { return styleInfo.Render(iconInfo) }

// Success prints a success message.
func Success(msg string, args ...any) {
	printf("%s %s\n", SuccessPrefix(), fmt.Sprintf(msg, args...))
}

// Error prints an error message.
func Error(msg string, args ...any) {
	printf("%s %s\n", ErrorPrefix(), fmt.Sprintf(msg, args...))
}

// Warn prints a warning message.
func Warn(msg string, args ...any) {
	printf("%s %s\n", WarnPrefix(), fmt.Sprintf(msg, args...))
}

// Info prints an info message.
func Info(msg string, args ...any) {
	printf("%s %s\n", InfoPrefix(), fmt.Sprintf(msg, args...))
}

// Step prints a step message with indentation.
func Step(msg string, args ...any) {
	printf("  %s %s\n", styleDim.Render(iconBullet), fmt.Sprintf(msg, args...))
}

// Label prints a key-value pair with consistent formatting.
func Label(key, value string) {
	printf("  %s %s\n", styleLabel.Render(key), styleValue.Render(value))
}

// Dim prints dimmed text.
func Dim(msg string, args ...any) {
	printf("  %s\n", styleDim.Render(fmt.Sprintf(msg, args...)))
}

// Header prints a section header.
func Header(title string) {
	printf("\n%s\n", styleHeader.Render(title))
}

// Divider prints a horizontal divider.
func Divider() {
	printf("%s\n", styleDim.Render(strings.Repeat("─", 50)))
}

// Call prints one boundary call and what it returned.
func Call(symbol, args, result string) {
	printf("%s %s%s %s %s\n",
		styleInfo.Render(iconCall),
		stylePrimary.Render(symbol),
		styleDim.Render("("+args+")"),
		styleDim.Render(iconArrow),
		styleBold.Render(result))
}

// Done prints a completion message with elapsed time.
func Done(what string, d time.Duration) {
	printf("%s %s %s\n",
		SuccessPrefix(),
		what,
		styleDim.Render(fmt.Sprintf("(%s)", FormatDuration(d))))
}

// Table renders a simple table.
type Table struct {
	headers []string
	rows    [][]string
	widths  []int
}

// NewTable creates a new table with headers.
func NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	return &Table{headers: headers, widths: widths}
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cols ...string) {
	for i, c := range cols {
		if i < len(t.widths) && len(c) > t.widths[i] {
			t.widths[i] = len(c)
		}
	}
	t.rows = append(t.rows, cols)
}

// Render prints the table.
func (t *Table) Render() {
	var hdr strings.Builder
	for i, h := range t.headers {
		if i > 0 {
			hdr.WriteString("  ")
		}
		fmt.Fprintf(&hdr, "%-*s", t.widths[i], h)
	}
	printf("  %s\n", styleDim.Render(hdr.String()))

	var sep strings.Builder
	for i, w := range t.widths {
		if i > 0 {
			sep.WriteString("  ")
		}
		sep.WriteString(strings.Repeat("─", w))
	}
	printf("  %s\n", styleDim.Render(sep.String()))

	for _, row := range t.rows {
		var line strings.Builder
		for i, col := range row {
			if i > 0 {
				line.WriteString("  ")
			}
			if i < len(t.widths) {
				fmt.Fprintf(&line, "%-*s", t.widths[i], col)
			} else {
				line.WriteString(col)
			}
		}
		printf("  %s\n", line.String())
	}
}

// FormatSize formats a signed byte count, keeping the sign of a delta.
func FormatSize(b int64) string {
	if b < 0 {
		return "-" + humanize.IBytes(uint64(-b))
	}
	return humanize.IBytes(uint64(b))
}

// FormatDuration formats duration as human readable string.
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}
