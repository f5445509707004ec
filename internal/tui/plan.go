package tui

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"gosplice/pkg/region"
)

const previewWidth = 24

// RenderPlan renders regions as a static table, one row per region in the
// order given, followed by a summary of the net size change.
func RenderPlan(regions []region.Region) string {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Begin", Width: 10},
		{Title: "Len", Width: 8},
		{Title: "New len", Width: 8},
		{Title: "Delta", Width: 8},
		{Title: "Kind", Width: 6},
		{Title: "Data", Width: previewWidth},
	}

	rows := make([]table.Row, 0, len(regions))
	var net int64
	for i, r := range regions {
		net += r.Delta()
		rows = append(rows, table.Row{
			strconv.Itoa(i),
			strconv.FormatInt(r.Begin, 10),
			strconv.FormatInt(r.Len, 10),
			strconv.Itoa(len(r.Data)),
			fmt.Sprintf("%+d", r.Delta()),
			r.Kind().String(),
			preview(r.Data),
		})
	}

	styles := table.DefaultStyles()
	styles.Selected = lipgloss.NewStyle()
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithStyles(styles),
		table.WithHeight(len(rows)+1),
	)

	summary := fmt.Sprintf("%d regions, net change %+d bytes", len(regions), net)
	if net != 0 {
		summary += fmt.Sprintf(" (%s)", humanize.IBytes(uint64(abs(net))))
	}
	return t.View() + "\n" + hintStyle.Render(summary) + "\n"
}

// preview shows printable text quoted and anything else as hex.
func preview(data []byte) string {
	if len(data) == 0 {
		return "-"
	}
	if utf8.Valid(data) && isPrintable(string(data)) {
		return strconv.Quote(string(data))
	}
	return "0x" + hex.EncodeToString(data)
}

func isPrintable(s string) bool {
	for _, r := range s {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
