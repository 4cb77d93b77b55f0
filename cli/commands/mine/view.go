package mine

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"lostfound/cli/styles"
	"lostfound/cli/utils"
	"lostfound/shared"
	"lostfound/shared/constants"
)

const myItemsHelp = `
Enter -> open item | a -> add item | q -> quit`

// Model is the my-items view: the user's reports plus the summary
// panel derived from them on every render.
type Model struct {
	// SelectedID is set when the user opens one of their items.
	SelectedID string
	// AddRequested is set when the user asks for the add-item form.
	AddRequested bool

	items    []shared.Item
	table    table.Model
	quitting bool
}

func NewModel(items []shared.Item) Model {
	rows := make([]table.Row, 0, len(items))
	for _, i := range items {
		status := i.StatusLabel()
		if i.Resolved {
			status += " ✓R"
		}

		rows = append(rows, table.Row{
			status,
			i.Category,
			i.Title,
			i.Location,
			utils.FormatDate(i.Date),
			utils.FormatDate(i.CreatedAt),
		})
	}

	return Model{
		items: items,
		table: table.New(
			table.WithColumns(myItemsColumns()),
			table.WithRows(rows),
			table.WithFocused(true),
			table.WithHeight(10)),
	}
}

func myItemsColumns() []table.Column {
	return []table.Column{
		{Title: "Status", Width: 11},
		{Title: "Category", Width: 12},
		{Title: "Title", Width: 26},
		{Title: "Location", Width: 16},
		{Title: "Date", Width: 12},
		{Title: "Posted", Width: 12},
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "a":
			m.AddRequested = true
			return m, tea.Quit
		case "enter":
			if len(m.items) == 0 {
				return m, nil
			}

			m.SelectedID = m.items[m.table.Cursor()].ID
			return m, tea.Quit
		}
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting || len(m.SelectedID) > 0 || m.AddRequested {
		return ""
	}

	header := styles.BoldStyle.Render(utils.GenerateTitle("My Items"))

	if len(m.items) == 0 {
		empty := "\n  You haven't posted any items yet.\n" +
			"  Start helping the community by posting lost or found items!\n" +
			"  Press 'a' to add your first item.  \n"
		return header + "\n" +
			styles.TableStyle.Render(empty) + "\n" +
			styles.HelpStyle.Render(myItemsHelp)
	}

	return header + "\n" +
		styles.TableStyle.Render(m.table.View()) + "\n" +
		m.previewLine() + "\n" +
		m.summaryPanel() + "\n" +
		styles.HelpStyle.Render(myItemsHelp)
}

func (m Model) previewLine() string {
	i := m.items[m.table.Cursor()]
	return styles.HelpStyle.Render(" " + shared.TruncateDescription(
		i.Description, constants.MyItemsPreviewLen))
}

// summaryPanel renders the four aggregate counts, recomputed from the
// current list each time the view draws.
func (m Model) summaryPanel() string {
	summary := Summarize(m.items)

	return styles.BoldStyle.Render("Summary") + fmt.Sprintf(
		"  Total: %d │ Lost: %d │ Found: %d │ Resolved: %d",
		summary.Total,
		summary.Lost,
		summary.Found,
		summary.Resolved)
}
