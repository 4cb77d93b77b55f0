package post

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"

	"lostfound/cli/globals"
	"lostfound/cli/styles"
	"lostfound/cli/utils"
	"lostfound/shared"
)

// ShowPostModel walks the user through posting a new lost/found report.
// Submission failures re-show the form with the server's error so
// nothing typed is lost.
func ShowPostModel() {
	var f form
	var submitted bool

	postForm := func(prevErr error) (bool, error) {
		var confirmed bool
		var errMsg string
		if prevErr != nil {
			errMsg = styles.ErrStyle.Render(prevErr.Error())
		}

		err := huh.NewForm(huh.NewGroup(
			huh.NewNote().
				Title(utils.GenerateTitle("Add Item")).
				Description("Post a lost or found item to the community board."),
			huh.NewSelect[string]().
				Title("Status").
				Options(
					huh.NewOption("Lost", shared.StatusLost),
					huh.NewOption("Found", shared.StatusFound)).
				Value(&f.Status),
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOptions()...).
				Value(&f.Category),
			huh.NewInput().
				Title("Title").
				Placeholder("What was lost or found?").
				Validate(required(errTitleRequired)).
				Value(&f.Title),
			huh.NewText().
				Title("Description").
				Placeholder("Color, brand, identifying marks...").
				Validate(required(errDescriptionRequired)).
				Value(&f.Description),
			huh.NewInput().
				Title("Location").
				Placeholder("Where?").
				Validate(required(errLocationRequired)).
				Value(&f.Location),
			huh.NewInput().
				Title("Date").
				Placeholder("YYYY-MM-DD (blank for today)").
				Validate(validateDate).
				Value(&f.Date),
			huh.NewInput().
				Title("Contact Info").
				Placeholder("How should finders reach you?").
				Validate(required(errContactRequired)).
				Value(&f.ContactInfo),
			huh.NewInput().
				Title("Image URL (optional)").
				Value(&f.ImageURL),
			huh.NewConfirm().
				Description(errMsg).
				Affirmative("Post Item").
				Negative("Cancel").
				Value(&confirmed)),
		).WithTheme(styles.Theme).Run()

		if err == huh.ErrUserAborted || !confirmed {
			return false, nil
		} else if err != nil {
			return false, err
		}

		item, err := f.toItem()
		if err != nil {
			return false, err
		}

		var created shared.Item
		_ = spinner.New().Title("Posting item...").Action(func() {
			created, err = globals.API.CreateItem(item)
		}).Run()

		if err != nil {
			return false, err
		}

		showPostedView(created)
		return true, nil
	}

	var err error
	submitted, err = postForm(nil)
	for err != nil && !submitted {
		submitted, err = postForm(err)
	}
}

func categoryOptions() []huh.Option[string] {
	var options []huh.Option[string]
	for _, category := range shared.Categories {
		options = append(options, huh.NewOption(category, category))
	}

	return options
}

func showPostedView(created shared.Item) {
	desc := styles.SuccessStyle.Render(
		fmt.Sprintf("'%s' has been posted (id %s).", created.Title, created.ID))

	_ = huh.NewForm(huh.NewGroup(
		huh.NewNote().
			Title(utils.GenerateTitle("Add Item")).
			Description(desc),
		huh.NewConfirm().Affirmative("OK").Negative(""),
	)).WithTheme(styles.Theme).Run()
}
