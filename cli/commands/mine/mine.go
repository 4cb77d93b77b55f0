package mine

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh/spinner"

	"lostfound/cli/commands/item"
	"lostfound/cli/commands/post"
	"lostfound/cli/globals"
	"lostfound/cli/utils"
	"lostfound/shared"
)

// Summary holds the aggregate counts shown under the my-items grid.
// It is always recomputed from the current list, never stored.
type Summary struct {
	Total    int
	Lost     int
	Found    int
	Resolved int
}

// Summarize derives the summary panel counts from the user's items.
func Summarize(items []shared.Item) Summary {
	summary := Summary{Total: len(items)}
	for _, i := range items {
		switch i.Status {
		case shared.StatusLost:
			summary.Lost++
		case shared.StatusFound:
			summary.Found++
		}

		if i.Resolved {
			summary.Resolved++
		}
	}

	return summary
}

// ShowMyItemsModel runs the authenticated my-items view. Like the
// public listing, leaving for a detail page and coming back refetches.
func ShowMyItemsModel() {
	for {
		m := NewModel(fetchMyItems())
		final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
		utils.HandleCLIError("Error displaying my items", err)

		result, ok := final.(Model)
		if !ok {
			return
		}

		if len(result.SelectedID) > 0 {
			item.ShowDetailModel(result.SelectedID)
			continue
		} else if result.AddRequested {
			post.ShowPostModel()
			continue
		}

		return
	}
}

// fetchMyItems loads the caller's items; failures degrade to an empty
// list, the same silent handling the listing view uses.
func fetchMyItems() []shared.Item {
	var items []shared.Item
	var err error

	_ = spinner.New().Title("Loading your items...").Action(func() {
		items, err = globals.API.FetchMyItems()
	}).Run()

	if err != nil {
		log.Printf("error fetching my items: %v\n", err)
		return nil
	}

	return items
}
