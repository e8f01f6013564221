package model

import "testing"

func TestDefaultItems_Order(t *testing.T) {
	expected := []string{"Home", "Money", "Bank", "Vacation", "User", "Charts", "Support"}

	items := DefaultItems()
	if len(items) != len(expected) {
		t.Fatalf("Expected %d items, got %d", len(expected), len(items))
	}

	for i, title := range expected {
		if items[i].Title != title {
			t.Errorf("Item %d: expected title %s, got %s", i, title, items[i].Title)
		}
	}
}

func TestDefaultItems_ImageNames(t *testing.T) {
	expected := []string{"home", "money", "bank", "vacation", "user", "chart", "support"}

	for i, item := range DefaultItems() {
		if item.ImageName != expected[i] {
			t.Errorf("Item %s: expected image %s, got %s", item.Title, expected[i], item.ImageName)
		}
		if item.TintColor == nil {
			t.Errorf("Item %s has no tint color", item.Title)
		}
	}
}

func TestDefaultItems_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, item := range DefaultItems() {
		id := item.ID.String()
		if seen[id] {
			t.Errorf("Duplicate item ID %s", id)
		}
		seen[id] = true
	}
}
