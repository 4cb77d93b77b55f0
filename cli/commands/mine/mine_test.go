package mine

import (
	"testing"

	"lostfound/shared"
)

func TestSummarize(t *testing.T) {
	items := []shared.Item{
		{ID: "a", Status: shared.StatusLost},
		{ID: "b", Status: shared.StatusLost, Resolved: true},
		{ID: "c", Status: shared.StatusFound},
		{ID: "d", Status: shared.StatusFound, Resolved: true},
		{ID: "e", Status: shared.StatusFound},
	}

	summary := Summarize(items)
	if summary.Total != 5 {
		t.Fatalf("Unexpected total (expected 5, got %d)", summary.Total)
	}
	if summary.Lost != 2 || summary.Found != 3 {
		t.Fatalf("Unexpected status counts (lost %d, found %d)",
			summary.Lost, summary.Found)
	}
	if summary.Resolved != 2 {
		t.Fatalf("Unexpected resolved count (expected 2, got %d)",
			summary.Resolved)
	}

	// With every status defined, the split always covers the total
	if summary.Lost+summary.Found != summary.Total {
		t.Fatal("Lost + found should equal the total")
	}
	if summary.Resolved > summary.Total {
		t.Fatal("Resolved count can never exceed the total")
	}
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)
	if summary != (Summary{}) {
		t.Fatalf("Empty list should produce zero counts: %+v", summary)
	}
}

func TestMyItemsModelSelection(t *testing.T) {
	items := []shared.Item{
		{ID: "mine-1", Title: "Umbrella", Status: shared.StatusFound},
		{ID: "mine-2", Title: "Wallet", Status: shared.StatusLost},
	}

	m := NewModel(items)
	if len(m.table.Rows()) != 2 {
		t.Fatalf("Table should hold one row per item")
	}
}
