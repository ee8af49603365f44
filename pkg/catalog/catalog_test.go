package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSearchMatchesCityCaseInsensitively(t *testing.T) {
	c := Default()

	for _, city := range []string{"Marrakech", "marrakech", "MARRAKECH"} {
		results := c.Search(SearchParams{City: city})
		if len(results) != 3 {
			t.Fatalf("Search(%q): expected 3 hotels, got %d", city, len(results))
		}
		for _, hotel := range results {
			if hotel.City != "Marrakech" {
				t.Fatalf("Search(%q) returned hotel from %s", city, hotel.City)
			}
		}
	}
}

func TestSearchUnknownCity(t *testing.T) {
	results := Default().Search(SearchParams{City: "Atlantis"})
	if len(results) != 0 {
		t.Fatalf("expected no hotels, got %d", len(results))
	}
}

func TestSearchBudgetFiltersOnBasePrice(t *testing.T) {
	c := Default()

	results := c.Search(SearchParams{City: "Marrakech", Budget: 50})
	if len(results) != 1 || results[0].ID != "h3" {
		t.Fatalf("budget=50: expected exactly h3, got %v", ids(results))
	}

	// The boundary is exclusive: a hotel priced exactly at the budget stays.
	results = c.Search(SearchParams{City: "Marrakech", Budget: 85})
	if len(results) != 2 {
		t.Fatalf("budget=85: expected h1 and h3, got %v", ids(results))
	}
}

func TestSearchPreferencesNeverExclude(t *testing.T) {
	c := Default()

	all := c.Search(SearchParams{City: "Marrakech"})
	filtered := c.Search(SearchParams{City: "Marrakech", Preferences: []string{"luxury"}})
	if len(filtered) != len(all) {
		t.Fatalf("preferences changed the result set: %d vs %d", len(filtered), len(all))
	}
}

func TestDetails(t *testing.T) {
	c := Default()

	hotel, ok := c.Details("h7")
	if !ok {
		t.Fatalf("Details(h7): not found")
	}
	if hotel.Name != "Shibuya Stream Excel" {
		t.Fatalf("Details(h7): unexpected hotel %s", hotel.Name)
	}

	if _, ok := c.Details("h999"); ok {
		t.Fatalf("Details(h999): expected not found")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hotels.yaml")
	data := `
- id: x1
  name: Test Inn
  city: Testville
  rating: 3.5
  price: 40
  room_types:
    Single: 40
  amenities: [wifi]
  context: A test hotel.
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	results := c.Search(SearchParams{City: "testville"})
	if len(results) != 1 || results[0].ID != "x1" {
		t.Fatalf("expected x1, got %v", ids(results))
	}
}

func TestLoadFileErrors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(empty, []byte("[]"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadFile(empty); err == nil {
		t.Fatalf("expected error for empty catalog")
	}
}

func ids(hotels []Hotel) []string {
	var out []string
	for _, h := range hotels {
		out = append(out, h.ID)
	}
	return out
}
