package item

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"

	"lostfound/cli/api"
	"lostfound/cli/globals"
	"lostfound/cli/styles"
	"lostfound/cli/utils"
	"lostfound/shared"
)

// ShowDetailModel fetches and displays a single item by its identifier.
// It returns once the user heads back to the listing, including after a
// successful delete.
func ShowDetailModel(id string) {
	var fetched shared.Item
	var err error

	_ = spinner.New().Title("Loading item...").Action(func() {
		fetched, err = globals.API.FetchItem(id)
	}).Run()

	if err != nil {
		showMissingItemView(err)
		return
	}

	runDetailLoop(fetched)
}

// showMissingItemView is the not-found/error page: no item detail, just
// a way back home.
func showMissingItemView(err error) {
	desc := "The item you're looking for doesn't exist or was removed."
	if !errors.Is(err, api.ErrItemNotFound) {
		desc = fmt.Sprintf("Failed to load item: %v", err)
	}

	formErr := huh.NewForm(huh.NewGroup(
		huh.NewNote().
			Title(utils.GenerateTitle("Item Not Found")).
			Description(styles.ErrStyle.Render(desc)),
		huh.NewConfirm().Affirmative("Go Back Home").Negative(""),
	)).WithTheme(styles.Theme).Run()

	utils.HandleCLIError("Error displaying missing item page", formErr)
}

// runDetailLoop shows the detail page and dispatches its actions until
// the user leaves. The local item copy is the single source of truth
// for what is rendered; a successful resolve patches it in place
// without refetching.
func runDetailLoop(current shared.Item) {
	for {
		selected := backHome
		options := generateSelectOptions(current)

		err := huh.NewForm(huh.NewGroup(
			huh.NewNote().
				Title(utils.GenerateTitle(current.Title)).
				Description(generateDetailView(current)),
			huh.NewSelect[action]().
				Title("Actions").
				Options(options...).
				Value(&selected),
		)).WithTheme(styles.Theme).Run()
		utils.HandleCLIError("Error displaying item detail", err)

		switch selected {
		case markResolved:
			if updated, ok := resolve(current); ok {
				current = updated
			}
		case deleteItem:
			if remove(current) {
				return
			}
		case previewPhoto:
			showPhotoPreview(current)
		case copyContact:
			copyContactInfo(current)
		case shareItem:
			showShareView(current)
		case backHome:
			return
		}
	}
}

func generateSelectOptions(current shared.Item) []huh.Option[action] {
	var options []huh.Option[action]
	for _, a := range availableActions(globals.CurrentUser, current) {
		options = append(options, huh.NewOption(actionLabel(a), a))
	}

	return options
}

// resolve marks the item resolved on the server. On success the local
// copy is updated optimistically; on failure a blocking alert is shown
// and nothing changes.
func resolve(current shared.Item) (shared.Item, bool) {
	var err error
	var updated shared.Item

	_ = spinner.New().Title("Updating item...").Action(func() {
		updated, err = globals.API.ResolveItem(current)
	}).Run()

	if err != nil {
		utils.ShowErrorForm("Failed to update item")
		return current, false
	}

	return updated, true
}

// remove deletes the item after an explicit confirmation. Returns true
// when the item is gone and the caller should navigate back home.
func remove(current shared.Item) bool {
	var confirmed bool

	confirm := huh.NewConfirm().
		Title(fmt.Sprintf("Are you sure you want to delete '%s'?", current.Title)).
		Description("WARNING: This cannot be undone!").
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed)

	err := huh.NewForm(huh.NewGroup(confirm)).
		WithTheme(styles.DestructiveTheme()).Run()
	utils.HandleCLIError("Error displaying delete confirmation", err)

	if !confirmed {
		return false
	}

	_ = spinner.New().Title("Deleting item...").Action(func() {
		err = globals.API.DeleteItem(current.ID)
	}).Run()

	if err != nil {
		utils.ShowErrorForm("Failed to delete item")
		return false
	}

	return true
}

func showPhotoPreview(current shared.Item) {
	var imgBytes []byte
	var err error

	_ = spinner.New().Title("Fetching photo...").Action(func() {
		imgBytes, err = globals.API.DownloadImage(current.ImageURL)
	}).Run()

	noteContent := ""
	if err != nil {
		noteContent = styles.ErrStyle.Render(
			fmt.Sprintf("Failed to fetch photo: %v", err))
	} else if noteContent, err = imageToAscii(imgBytes); err != nil {
		noteContent = "Unable to preview this photo in the CLI app"
	}

	_ = huh.NewForm(huh.NewGroup(
		huh.NewNote().
			Title(utils.GenerateTitle(current.Title)).
			Description(noteContent),
		huh.NewConfirm().Affirmative("Back").Negative(""),
	)).WithTheme(styles.Theme).Run()
}

func copyContactInfo(current shared.Item) {
	if err := clipboard.WriteAll(current.ContactInfo); err != nil {
		utils.ShowErrorForm("Failed to copy contact info to the clipboard")
		return
	}

	_ = huh.NewForm(huh.NewGroup(
		huh.NewNote().
			Title(utils.GenerateTitle("Contact Info")).
			Description(styles.SuccessStyle.Render(
				"Contact info copied to the clipboard")),
		huh.NewConfirm().Affirmative("OK").Negative(""),
	)).WithTheme(styles.Theme).Run()
}

// showShareView renders a QR code pointing at the item's web page so
// the listing can be handed off to a phone.
func showShareView(current shared.Item) {
	url := shareLink(globals.Config.Server, current.ID)

	_ = huh.NewForm(huh.NewGroup(
		huh.NewNote().
			Title(utils.GenerateTitle("Share Item")).
			Description(fmt.Sprintf("%s\n%s", generateQR(url), url)),
		huh.NewConfirm().Affirmative("Back").Negative(""),
	)).WithTheme(styles.Theme).Run()
}
