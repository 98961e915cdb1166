// Package components holds reusable lipgloss renderers for command output.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/bnema/rocker/internal/adapters/in/cli/ui/styles"
)

// TableColumn defines a table column. A zero Width means unbounded.
type TableColumn struct {
	Title string
	Width int
}

// Table is a bordered lipgloss table.
type Table struct {
	columns     []TableColumn
	rows        [][]string
	border      lipgloss.Border
	borderStyle lipgloss.Style
	headerStyle lipgloss.Style
	cellStyle   lipgloss.Style
}

// TableOption configures a Table.
type TableOption func(*Table)

// NewTable creates a table styled with the rocker theme.
func NewTable(opts ...TableOption) *Table {
	t := &Table{
		border:      lipgloss.RoundedBorder(),
		borderStyle: styles.Theme.TableBorder,
		headerStyle: styles.Theme.TableHeader,
		cellStyle:   styles.Theme.TableCell,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// WithColumns sets the table columns.
func WithColumns(cols []TableColumn) TableOption {
	return func(t *Table) {
		t.columns = cols
	}
}

// WithRows sets the table rows.
func WithRows(rows [][]string) TableOption {
	return func(t *Table) {
		t.rows = rows
	}
}

// Render renders the table as a string.
func (t *Table) Render() string {
	if len(t.columns) == 0 {
		return ""
	}

	headers := make([]string, len(t.columns))
	for i, col := range t.columns {
		headers[i] = truncateCell(col.Title, contentWidth(t.headerStyle, col.Width))
	}

	rows := make([][]string, len(t.rows))
	for rowIdx, row := range t.rows {
		rows[rowIdx] = make([]string, len(row))
		for colIdx, cell := range row {
			rows[rowIdx][colIdx] = truncateCell(cell, contentWidth(t.cellStyle, t.columnWidth(colIdx)))
		}
	}

	return table.New().
		Border(t.border).
		BorderStyle(t.borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := t.cellStyle
			if row == table.HeaderRow {
				style = t.headerStyle
			}
			if width := t.columnWidth(col); width > 0 {
				return style.Width(width).MaxWidth(width)
			}
			return style
		}).
		String()
}

func (t *Table) columnWidth(col int) int {
	if col < 0 || col >= len(t.columns) {
		return 0
	}
	return t.columns[col].Width
}

// contentWidth is the room left for text in a column of the given width once
// the style's horizontal padding is taken. Zero stays unbounded.
func contentWidth(style lipgloss.Style, width int) int {
	if width <= 0 {
		return 0
	}
	return max(width-style.GetHorizontalPadding(), 1)
}

// truncateCell shortens value to maxWidth display cells, ending with "...".
// Styled values are returned untouched.
func truncateCell(value string, maxWidth int) string {
	if strings.Contains(value, "\x1b[") {
		return value
	}

	if maxWidth <= 0 || runewidth.StringWidth(value) <= maxWidth {
		return value
	}

	if maxWidth <= 3 {
		return strings.Repeat(".", maxWidth)
	}

	targetWidth := maxWidth - 3
	b := strings.Builder{}
	currentWidth := 0
	g := uniseg.NewGraphemes(value)
	for g.Next() {
		grapheme := g.Str()
		graphemeWidth := runewidth.StringWidth(grapheme)
		if currentWidth+graphemeWidth > targetWidth {
			break
		}
		b.WriteString(grapheme)
		currentWidth += graphemeWidth
	}

	if b.Len() == 0 {
		return strings.Repeat(".", maxWidth)
	}

	return b.String() + "..."
}

// ListTable renders a single unbounded column, one row per value. Values are
// never shortened so they can be copied back into other commands.
func ListTable(title string, values []string) string {
	rows := make([][]string, len(values))
	for i, v := range values {
		rows[i] = []string{v}
	}
	return NewTable(
		WithColumns([]TableColumn{{Title: title}}),
		WithRows(rows),
	).Render()
}

// KeyValueTable renders label/value pairs as a two column table.
func KeyValueTable(pairs [][2]string) string {
	rows := make([][]string, len(pairs))
	for i, p := range pairs {
		rows[i] = []string{p[0], p[1]}
	}
	return NewTable(
		WithColumns([]TableColumn{{Title: "FIELD"}, {Title: "VALUE"}}),
		WithRows(rows),
	).Render()
}
