package item

import (
	"strings"
	"testing"

	"lostfound/shared"
)

var owner = &shared.User{ID: "user-1", Name: "Alice"}
var stranger = &shared.User{ID: "user-2", Name: "Bob"}

var detailItem = shared.Item{
	ID:          "item-1",
	Title:       "Car keys",
	Description: "Toyota keys with a red keychain",
	Category:    "Keys",
	Status:      shared.StatusLost,
	Location:    "Main St parking lot",
	UserID:      "user-1",
	UserName:    "Alice",
	ContactInfo: "alice@example.com",
}

func hasAction(actions []action, target action) bool {
	for _, a := range actions {
		if a == target {
			return true
		}
	}

	return false
}

func TestOwnerActions(t *testing.T) {
	actions := availableActions(owner, detailItem)

	if !hasAction(actions, markResolved) {
		t.Fatal("Owner of an unresolved item should be able to resolve it")
	}
	if !hasAction(actions, deleteItem) {
		t.Fatal("Owner should be able to delete their item")
	}
	if !hasAction(actions, backHome) {
		t.Fatal("Every viewer gets a way back home")
	}
}

func TestResolvedItemHidesResolveAction(t *testing.T) {
	resolved := detailItem
	resolved.Resolved = true

	actions := availableActions(owner, resolved)
	if hasAction(actions, markResolved) {
		t.Fatal("A resolved item must not offer the resolve action")
	}
	if !hasAction(actions, deleteItem) {
		t.Fatal("Delete should remain available after resolution")
	}
}

func TestStrangerActions(t *testing.T) {
	actions := availableActions(stranger, detailItem)

	if hasAction(actions, markResolved) || hasAction(actions, deleteItem) {
		t.Fatal("Non-owners must not see resolve or delete")
	}
}

func TestAnonymousActions(t *testing.T) {
	actions := availableActions(nil, detailItem)

	if hasAction(actions, markResolved) || hasAction(actions, deleteItem) {
		t.Fatal("Anonymous viewers must not see resolve or delete")
	}
	if !hasAction(actions, copyContact) || !hasAction(actions, shareItem) {
		t.Fatal("Contact and share actions are available to everyone")
	}
}

func TestPhotoPreviewGatedOnImageURL(t *testing.T) {
	if hasAction(availableActions(nil, detailItem), previewPhoto) {
		t.Fatal("No preview action without an image URL")
	}

	withPhoto := detailItem
	withPhoto.ImageURL = "http://localhost:5000/uploads/keys.jpg"
	if !hasAction(availableActions(nil, withPhoto), previewPhoto) {
		t.Fatal("Items with a photo should offer a preview")
	}
}

func TestGenerateDetailView(t *testing.T) {
	detail := generateDetailView(detailItem)

	for _, expected := range []string{
		"Lost",
		"Keys",
		"Alice",
		"Main St parking lot",
		"Toyota keys with a red keychain",
		"alice@example.com",
	} {
		if !strings.Contains(detail, expected) {
			t.Fatalf("Detail view is missing %q:\n%s", expected, detail)
		}
	}

	if strings.Contains(detail, "Resolved") {
		t.Fatal("Unresolved items must not show the resolved badge")
	}
}

func TestGenerateDetailViewResolvedBadge(t *testing.T) {
	resolved := detailItem
	resolved.Resolved = true

	if !strings.Contains(generateDetailView(resolved), "Resolved") {
		t.Fatal("Resolved items should show the resolved badge")
	}
}

func TestShareLink(t *testing.T) {
	url := shareLink("http://localhost:5000", "item-1")
	if url != "http://localhost:5000/item/item-1" {
		t.Fatalf("Unexpected share link: %s", url)
	}
}

func TestGenerateQR(t *testing.T) {
	qr := generateQR("http://localhost:5000/item/item-1")
	if len(qr) == 0 {
		t.Fatal("QR generation should produce terminal output")
	}
}
