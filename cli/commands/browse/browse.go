package browse

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

// ShowBrowseModel runs the public listing view. Opening an item's detail
// page (or the add-item form) leaves the listing; returning re-enters
// it, which refetches the collection.
func ShowBrowseModel() {
	for {
		m := NewModel(fetchListing())
		final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
		utils.HandleCLIError("Error displaying listing", err)

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

// fetchListing loads the full item collection. List failures are not
// surfaced to the user; the listing just renders its empty state.
func fetchListing() []shared.Item {
	var items []shared.Item
	var err error

	_ = spinner.New().Title("Loading items...").Action(func() {
		items, err = globals.API.FetchItems()
	}).Run()

	if err != nil {
		log.Printf("error fetching items: %v\n", err)
		return nil
	}

	return items
}
