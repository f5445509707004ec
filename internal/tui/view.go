package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FFFF"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#777777"))
	doneStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FF00"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF0000"))
)

// ModelView renders the progress model's view as a string.
func ModelView(m model) string {
	switch {
	case m.cancelled:
		return errorStyle.Render("Cancelled") + " after " + bytesLine(m) + "\n"
	case m.done && m.err != nil:
		return errorStyle.Render("Failed: ") + m.err.Error() + "\n"
	case m.done:
		return doneStyle.Render("Done") + " " + bytesLine(m) + "\n"
	default:
		return progressView(m)
	}
}

func progressView(m model) string {
	label := "File: "
	name := truncateLeft(m.status.FileName, m.width-runewidth.StringWidth(label))

	var b strings.Builder
	b.WriteString(headerStyle.Render(m.title) + "\n")
	b.WriteString(label + name + "\n")
	b.WriteString(m.bar.ViewAs(m.percent()) + "\n")
	b.WriteString(bytesLine(m) + "\n")
	b.WriteString(hintStyle.Render("Press q or Ctrl+C to cancel."))
	return lipgloss.NewStyle().Padding(0, 1).Render(b.String()) + "\n"
}

func bytesLine(m model) string {
	return fmt.Sprintf("%s / %s", humanize.IBytes(m.status.CopiedBytes), humanize.IBytes(m.status.TotalBytes))
}

// truncateLeft keeps the end of s so it fits into maxWidth display cells,
// marking the cut with an ellipsis. Paths stay recognizable by their base name.
func truncateLeft(s string, maxWidth int) string {
	if maxWidth <= 0 || runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	const ellipsis = "…"
	budget := maxWidth - runewidth.StringWidth(ellipsis)
	runes := []rune(s)
	width, i := 0, len(runes)
	for i > 0 {
		w := runewidth.RuneWidth(runes[i-1])
		if width+w > budget {
			break
		}
		width += w
		i--
	}
	return ellipsis + string(runes[i:])
}
