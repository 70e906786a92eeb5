package admin

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const previewWidth = 60

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	statStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Render writes the stats line and the visible messages as a table.
func Render(w io.Writer, v *View, now time.Time) error {
	st := v.Stats(now)
	visible := v.Visible()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Contact messages"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s total  %s this week  %s today\n",
		statStyle.Render(strconv.Itoa(st.Total)),
		statStyle.Render(strconv.Itoa(st.ThisWeek)),
		statStyle.Render(strconv.Itoa(st.Today)),
	))
	if at := v.FetchedAt(); !at.IsZero() {
		b.WriteString(mutedStyle.Render("fetched at " + at.In(now.Location()).Format("15:04:05")))
		b.WriteString("\n")
	}
	if q := strings.TrimSpace(v.Query()); q != "" {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("showing %d of %d matching %q", len(visible), st.Total, q)))
		b.WriteString("\n")
	}

	if len(visible) == 0 {
		b.WriteString(mutedStyle.Render("No messages."))
		b.WriteString("\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("ID", "RECEIVED", "NAME", "EMAIL", "MESSAGE").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, m := range visible {
		t.Row(
			strconv.FormatInt(m.ID, 10),
			m.CreatedAt.In(now.Location()).Format("2006-01-02 15:04"),
			m.Name,
			m.Email,
			preview(m.Message),
		)
	}
	b.WriteString(t.Render())
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func preview(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= previewWidth {
		return s
	}
	return string(r[:previewWidth-1]) + "…"
}
