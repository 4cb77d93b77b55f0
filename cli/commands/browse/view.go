package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"lostfound/cli/globals"
	"lostfound/cli/styles"
	"lostfound/cli/utils"
	"lostfound/shared"
	"lostfound/shared/constants"
)

const listingHelp = `
Enter -> open item | / -> search | s -> status filter | c -> category |
r ----> reset      | a -> add item | q -> quit`

// Model is the listing view: the canonical fetched list plus the
// current filters, with the table always rendering the derived list.
type Model struct {
	// SelectedID is set when the user opens an item's detail page.
	SelectedID string
	// AddRequested is set when the user asks for the add-item form.
	AddRequested bool

	items    []shared.Item
	filtered []shared.Item
	filters  shared.Filters

	table     table.Model
	search    textinput.Model
	searching bool
	quitting  bool
}

func NewModel(items []shared.Item) Model {
	search := textinput.New()
	search.Placeholder = "Search items..."
	search.CharLimit = 80
	search.Width = 40

	m := Model{
		items:  items,
		search: search,
		table: table.New(
			table.WithColumns(listingColumns()),
			table.WithFocused(true),
			table.WithHeight(12)),
	}

	m.applyFilters()
	return m
}

func listingColumns() []table.Column {
	return []table.Column{
		{Title: "Status", Width: 8},
		{Title: "Category", Width: 12},
		{Title: "Title", Width: 28},
		{Title: "Location", Width: 18},
		{Title: "Date", Width: 12},
		{Title: "Posted By", Width: 14},
	}
}

// applyFilters rederives the display list from the canonical list and
// the current filters. The canonical list is never touched.
func (m *Model) applyFilters() {
	m.filtered = shared.FilterItems(m.items, m.filters)

	rows := make([]table.Row, 0, len(m.filtered))
	for _, item := range m.filtered {
		rows = append(rows, table.Row{
			item.StatusLabel(),
			item.Category,
			item.Title,
			item.Location,
			utils.FormatDate(item.Date),
			item.UserName,
		})
	}

	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(0)
	}
}

// cycleStatus steps the status filter through all -> lost -> found.
func (m *Model) cycleStatus() {
	switch m.filters.Status {
	case "":
		m.filters.Status = shared.StatusLost
	case shared.StatusLost:
		m.filters.Status = shared.StatusFound
	default:
		m.filters.Status = ""
	}
}

// cycleCategory steps the category filter through every known category.
func (m *Model) cycleCategory() {
	if m.filters.Category == "" {
		m.filters.Category = shared.Categories[0]
		return
	}

	for idx, category := range shared.Categories {
		if category == m.filters.Category {
			if idx == len(shared.Categories)-1 {
				m.filters.Category = ""
			} else {
				m.filters.Category = shared.Categories[idx+1]
			}
			return
		}
	}

	m.filters.Category = ""
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.searching {
			switch keyMsg.String() {
			case "enter", "esc":
				m.searching = false
				m.search.Blur()
			case "ctrl+c":
				m.quitting = true
				return m, tea.Quit
			default:
				m.search, cmd = m.search.Update(msg)
				m.filters.Search = m.search.Value()
				m.applyFilters()
			}
			return m, cmd
		}

		switch keyMsg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "/":
			m.searching = true
			return m, m.search.Focus()
		case "s":
			m.cycleStatus()
			m.applyFilters()
			return m, nil
		case "c":
			m.cycleCategory()
			m.applyFilters()
			return m, nil
		case "r":
			m.filters = shared.Filters{}
			m.search.SetValue("")
			m.applyFilters()
			return m, nil
		case "a":
			if globals.CurrentUser != nil {
				m.AddRequested = true
				return m, tea.Quit
			}
			return m, nil
		case "enter":
			if len(m.filtered) == 0 {
				return m, nil
			}

			m.SelectedID = m.filtered[m.table.Cursor()].ID
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

	header := styles.BoldStyle.Render(utils.GenerateTitle(
		fmt.Sprintf("Recent Items (%d)", len(m.filtered))))

	var body string
	if len(m.filtered) == 0 {
		body = styles.TableStyle.Render(m.emptyMessage())
	} else {
		body = styles.TableStyle.Render(m.table.View()) +
			"\n" + m.previewLine()
	}

	return header + "\n" +
		m.filterLine() + "\n" +
		body + "\n" +
		styles.HelpStyle.Render(listingHelp)
}

// filterLine summarizes the active filters, including the live search
// input while it has focus.
func (m Model) filterLine() string {
	status := "All Status"
	if m.filters.Status != "" {
		status = strings.ToUpper(m.filters.Status[:1]) + m.filters.Status[1:]
	}

	category := "All Categories"
	if m.filters.Category != "" {
		category = m.filters.Category
	}

	line := fmt.Sprintf(" %s │ %s │ ", status, category)
	if m.searching {
		return line + m.search.View()
	} else if len(m.filters.Search) > 0 {
		return line + fmt.Sprintf("Search: %q", m.filters.Search)
	}

	return line + "Search: (none)"
}

// previewLine shows a truncated description of the highlighted item,
// the same preview the web app puts on each listing card.
func (m Model) previewLine() string {
	item := m.filtered[m.table.Cursor()]
	return styles.HelpStyle.Render(" " + shared.TruncateDescription(
		item.Description, constants.ListingPreviewLen))
}

// emptyMessage distinguishes logged-in viewers (invite posting) from
// anonymous ones (invite login).
func (m Model) emptyMessage() string {
	if globals.CurrentUser != nil {
		return "\n  No items found. Be the first to add one!  \n"
	}

	return "\n  No items found. Please login to add items.  \n"
}
