package shared

import (
	"strings"
	"time"
)

// Item statuses (the backend only ever returns these two).
const (
	StatusLost  = "lost"
	StatusFound = "found"
)

// Categories lists every category the backend accepts for an item,
// in the order they should appear in selection menus.
var Categories = []string{
	"Electronics",
	"Documents",
	"Accessories",
	"Clothing",
	"Keys",
	"Bags",
	"Others",
}

// Item is a lost/found report as returned by the backend. The backend
// is a Mongo-backed API, so the identifier comes over the wire as "_id".
type Item struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	Resolved    bool      `json:"resolved"`
	Location    string    `json:"location"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
	UserID      string    `json:"userId"`
	UserName    string    `json:"userName"`
	ContactInfo string    `json:"contactInfo"`
	ImageURL    string    `json:"imageUrl,omitempty"`
}

// User identifies the currently logged-in user. A nil *User means the
// viewer is browsing anonymously.
type User struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
}

// OwnedBy reports whether the given user posted this item. Anonymous
// viewers own nothing.
func (item Item) OwnedBy(user *User) bool {
	return user != nil && user.ID == item.UserID
}

// StatusLabel returns the display label for an item's lost/found state.
func (item Item) StatusLabel() string {
	if item.Status == StatusLost {
		return "✗ Lost"
	}

	return "✓ Found"
}

// Filters holds the three listing filters. An empty field means that
// predicate is inactive.
type Filters struct {
	Status   string
	Category string
	Search   string
}

// IsZero reports whether no filter is active.
func (f Filters) IsZero() bool {
	return f.Status == "" && f.Category == "" && f.Search == ""
}

// FilterItems derives the display list from the canonical item list and
// the current filters. Predicates are conjunctive: status equality,
// category equality, then a case-insensitive substring match against
// title or description. The input slice is never modified, and the same
// inputs always produce the same output.
func FilterItems(items []Item, filters Filters) []Item {
	filtered := make([]Item, 0, len(items))
	search := strings.ToLower(filters.Search)

	for _, item := range items {
		if filters.Status != "" && item.Status != filters.Status {
			continue
		}

		if filters.Category != "" && item.Category != filters.Category {
			continue
		}

		if search != "" &&
			!strings.Contains(strings.ToLower(item.Title), search) &&
			!strings.Contains(strings.ToLower(item.Description), search) {
			continue
		}

		filtered = append(filtered, item)
	}

	return filtered
}

// TruncateDescription shortens a description for card previews, keeping
// the first maxLen characters and appending an ellipsis. Descriptions
// that already fit are returned unchanged.
func TruncateDescription(desc string, maxLen int) string {
	runes := []rune(desc)
	if len(runes) <= maxLen {
		return desc
	}

	return string(runes[:maxLen]) + "..."
}
