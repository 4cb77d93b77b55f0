package item

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/mdp/qrterminal/v3"
	"github.com/qeesung/image2ascii/convert"

	"lostfound/cli/utils"
	"lostfound/shared"
	"lostfound/shared/endpoints"
)

type action int

const (
	backHome action = iota
	markResolved
	deleteItem
	previewPhoto
	copyContact
	shareItem
)

// availableActions lists the detail page actions for this viewer, in
// display order. Resolve and delete only appear for the item's owner,
// and resolve disappears once the item is resolved.
func availableActions(user *shared.User, item shared.Item) []action {
	var actions []action

	if item.OwnedBy(user) && !item.Resolved {
		actions = append(actions, markResolved)
	}

	if item.OwnedBy(user) {
		actions = append(actions, deleteItem)
	}

	if len(item.ImageURL) > 0 {
		actions = append(actions, previewPhoto)
	}

	actions = append(actions, copyContact, shareItem, backHome)
	return actions
}

func actionLabel(a action) string {
	switch a {
	case markResolved:
		return "Mark as Resolved"
	case deleteItem:
		return "Delete Item"
	case previewPhoto:
		return "Preview Photo"
	case copyContact:
		return "Copy Contact Info"
	case shareItem:
		return "Share"
	default:
		return "Back to Home"
	}
}

// generateBadges renders the status badge plus a resolved marker, the
// same pair of badges the web detail page shows.
func generateBadges(item shared.Item) string {
	badges := item.StatusLabel()
	if item.Resolved {
		badges += "  [Resolved]"
	}

	return fmt.Sprintf("%s  │  %s", badges, item.Category)
}

// generateDetailView builds the full detail text for an item.
func generateDetailView(item shared.Item) string {
	var sections []string

	sections = append(sections, generateBadges(item))

	meta := fmt.Sprintf(""+
		"Posted by: %s\n"+
		"Date:      %s\n"+
		"Location:  %s",
		item.UserName,
		utils.FormatDate(item.Date),
		item.Location)
	sections = append(sections, meta)

	sections = append(sections, utils.GenerateDescriptionSection(
		"Description", item.Description))
	sections = append(sections, utils.GenerateDescriptionSection(
		"Contact Information", item.ContactInfo))

	if len(item.ImageURL) > 0 {
		sections = append(sections, "Photo: "+item.ImageURL)
	}

	return strings.Join(sections, "\n\n")
}

// shareLink is the browser-facing URL for an item's detail page.
func shareLink(server, id string) string {
	return endpoints.HTMLItem.Format(server, id)
}

// generateQR renders a scannable QR code for an item link.
func generateQR(url string) string {
	var buf bytes.Buffer
	qrterminal.GenerateWithConfig(url, qrterminal.Config{
		Level:      qrterminal.L,
		Writer:     &buf,
		HalfBlocks: true,
		QuietZone:  1,
	})

	return buf.String()
}

// imageToAscii converts a downloaded item photo into colored terminal
// output.
func imageToAscii(fileBytes []byte) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(fileBytes))
	if err != nil {
		return "", err
	}

	converter := convert.NewImageConverter()
	options := convert.DefaultOptions
	options.Colored = true

	return converter.Image2ASCIIString(img, &options), nil
}
