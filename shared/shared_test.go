package shared

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

var testItems = []Item{
	{
		ID:          "a1",
		Title:       "Car keys",
		Description: "Toyota keys with a red keychain",
		Category:    "Keys",
		Status:      StatusLost,
		Location:    "Main St parking lot",
		UserID:      "user-1",
		UserName:    "Alice",
		Date:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:          "b2",
		Title:       "Backpack",
		Description: "Blue hiking backpack, medium size",
		Category:    "Bags",
		Status:      StatusFound,
		Location:    "Central Park",
		UserID:      "user-2",
		UserName:    "Bob",
		Date:        time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:          "c3",
		Title:       "Student ID card",
		Description: "University ID, name partially visible",
		Category:    "Documents",
		Status:      StatusLost,
		Resolved:    true,
		Location:    "Library",
		UserID:      "user-1",
		UserName:    "Alice",
		Date:        time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC),
	},
}

func TestFilterItemsNoFilters(t *testing.T) {
	filtered := FilterItems(testItems, Filters{})
	if len(filtered) != len(testItems) {
		t.Fatalf("Empty filters should keep every item\n"+
			"(expected: %d, got: %d)", len(testItems), len(filtered))
	}
}

func TestFilterItemsByStatus(t *testing.T) {
	filtered := FilterItems(testItems, Filters{Status: StatusLost})
	if len(filtered) != 2 {
		t.Fatalf("Unexpected lost item count (expected 2, got %d)", len(filtered))
	}

	for _, item := range filtered {
		if item.Status != StatusLost {
			t.Fatalf("Item %s has status %q, expected %q",
				item.ID, item.Status, StatusLost)
		}
	}

	filtered = FilterItems(testItems, Filters{Status: StatusFound})
	if len(filtered) != 1 || filtered[0].ID != "b2" {
		t.Fatalf("Found filter should keep only the backpack item")
	}
}

func TestFilterItemsByCategory(t *testing.T) {
	filtered := FilterItems(testItems, Filters{Category: "Keys"})
	if len(filtered) != 1 || filtered[0].ID != "a1" {
		t.Fatalf("Category filter should keep only the car keys item")
	}
}

func TestFilterItemsBySearch(t *testing.T) {
	// Case-insensitive match on the title
	filtered := FilterItems(testItems, Filters{Search: "BACK"})
	if len(filtered) != 1 || filtered[0].ID != "b2" {
		t.Fatalf("Search 'BACK' should match the backpack item only")
	}

	// Match on the description instead of the title
	filtered = FilterItems(testItems, Filters{Search: "keychain"})
	if len(filtered) != 1 || filtered[0].ID != "a1" {
		t.Fatalf("Search 'keychain' should match the car keys item only")
	}

	filtered = FilterItems(testItems, Filters{Search: "no-such-item"})
	if len(filtered) != 0 {
		t.Fatalf("Unmatched search should return an empty list")
	}
}

func TestFilterItemsConjunctive(t *testing.T) {
	// All three predicates must hold at once
	filters := Filters{Status: StatusLost, Category: "Documents", Search: "university"}
	filtered := FilterItems(testItems, filters)
	if len(filtered) != 1 || filtered[0].ID != "c3" {
		t.Fatalf("Conjunctive filters should keep only the ID card item")
	}

	// Same search, wrong status
	filters.Status = StatusFound
	if len(FilterItems(testItems, filters)) != 0 {
		t.Fatalf("A failing status predicate should exclude the item")
	}
}

func TestFilterItemsDeterministic(t *testing.T) {
	filters := Filters{Status: StatusLost, Search: "keys"}

	first := FilterItems(testItems, filters)
	second := FilterItems(testItems, filters)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Identical inputs should produce identical output")
	}
}

func TestFilterItemsDoesNotMutateInput(t *testing.T) {
	items := make([]Item, len(testItems))
	copy(items, testItems)

	FilterItems(items, Filters{Status: StatusFound, Search: "backpack"})
	if !reflect.DeepEqual(items, testItems) {
		t.Fatalf("Filtering must not modify the canonical list")
	}
}

func TestOwnedBy(t *testing.T) {
	item := testItems[0]

	if !item.OwnedBy(&User{ID: "user-1", Name: "Alice"}) {
		t.Fatalf("Owner should be recognized by matching user ID")
	}

	if item.OwnedBy(&User{ID: "user-2", Name: "Bob"}) {
		t.Fatalf("A different user must not own the item")
	}

	if item.OwnedBy(nil) {
		t.Fatalf("Anonymous viewers own nothing")
	}
}

func TestStatusLabel(t *testing.T) {
	if label := testItems[0].StatusLabel(); !strings.Contains(label, "Lost") {
		t.Fatalf("Unexpected lost label: %s", label)
	}

	if label := testItems[1].StatusLabel(); !strings.Contains(label, "Found") {
		t.Fatalf("Unexpected found label: %s", label)
	}
}

func TestTruncateDescription(t *testing.T) {
	long := strings.Repeat("x", 150)
	truncated := TruncateDescription(long, 100)
	if len([]rune(truncated)) != 103 || !strings.HasSuffix(truncated, "...") {
		t.Fatalf("Long descriptions should be cut to maxLen plus ellipsis")
	}

	short := "still here"
	if TruncateDescription(short, 100) != short {
		t.Fatalf("Short descriptions must be returned unchanged")
	}

	// Multibyte text shouldn't be split mid-rune
	unicode := strings.Repeat("č", 120)
	truncated = TruncateDescription(unicode, 100)
	if !strings.HasPrefix(truncated, "ččč") || !strings.HasSuffix(truncated, "...") {
		t.Fatalf("Truncation should be rune-safe")
	}
}
