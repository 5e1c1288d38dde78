package catalog

import (
	"testing"

	"github.com/alrooliya/workshop-booking/internal/locale"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	all := c.ListAll()
	if len(all) != 13 {
		t.Fatalf("expected 13 offerings, got %d", len(all))
	}
	if all[0].ID != "brakes" {
		t.Errorf("expected insertion order preserved, first id %q", all[0].ID)
	}

	vehicle := c.ListByCategory(CategoryVehicle)
	industrial := c.ListByCategory(CategoryIndustrial)
	if len(vehicle) != 12 {
		t.Errorf("expected 12 vehicle offerings, got %d", len(vehicle))
	}
	if len(industrial) != 1 {
		t.Errorf("expected 1 industrial offering, got %d", len(industrial))
	}

	if got := c.ListByCategory(Category("boats")); len(got) != 0 {
		t.Errorf("unknown category must yield empty list, got %d", len(got))
	}
}

func TestGet(t *testing.T) {
	c := Default()
	o, ok := c.Get("oil-change")
	if !ok {
		t.Fatal("expected oil-change offering")
	}
	if o.Category != CategoryVehicle {
		t.Errorf("unexpected category %s", o.Category)
	}
	if _, ok := c.Get("nope"); ok {
		t.Error("expected miss for unknown id")
	}
}

func TestResolveDisplayName(t *testing.T) {
	c := Default()
	o, _ := c.Get("brakes")

	if got := ResolveDisplayName(o, locale.English); got != "Brake Service & Repair" {
		t.Errorf("unexpected English name %q", got)
	}
	if got := ResolveDisplayName(o, locale.Arabic); got != "خدمة وإصلاح الفرامل" {
		t.Errorf("unexpected Arabic name %q", got)
	}
	// Unsupported locale falls back to English and never returns empty.
	if got := ResolveDisplayName(o, locale.Locale("fr")); got != "Brake Service & Repair" {
		t.Errorf("expected English fallback, got %q", got)
	}
}

func TestNewRejectsInvalidOfferings(t *testing.T) {
	_, err := New([]ServiceOffering{{
		ID:       "half-translated",
		Category: CategoryVehicle,
		DisplayName: map[locale.Locale]string{
			locale.English: "Only English",
		},
	}})
	if err == nil {
		t.Fatal("expected error for missing Arabic display name")
	}

	_, err = New([]ServiceOffering{
		{ID: "dup", Category: CategoryVehicle, DisplayName: map[locale.Locale]string{locale.English: "A", locale.Arabic: "أ"}},
		{ID: "dup", Category: CategoryVehicle, DisplayName: map[locale.Locale]string{locale.English: "B", locale.Arabic: "ب"}},
	})
	if err == nil {
		t.Fatal("expected error for duplicate id")
	}

	_, err = New([]ServiceOffering{{
		ID:       "bad-cat",
		Category: Category("marine"),
		DisplayName: map[locale.Locale]string{
			locale.English: "Boat", locale.Arabic: "قارب",
		},
	}})
	if err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestParseCategory(t *testing.T) {
	if _, err := ParseCategory("vehicle"); err != nil {
		t.Errorf("vehicle should parse: %v", err)
	}
	if _, err := ParseCategory("industrial"); err != nil {
		t.Errorf("industrial should parse: %v", err)
	}
	if _, err := ParseCategory("appliance"); err == nil {
		t.Error("expected error for unknown category")
	}
}
