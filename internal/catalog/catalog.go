// Package catalog exposes the workshop's immutable list of bookable services.
package catalog

import (
	"fmt"

	"github.com/alrooliya/workshop-booking/internal/locale"
)

// Category is the top-level service grouping. It decides which extra
// fields the booking form collects.
type Category string

const (
	CategoryVehicle    Category = "vehicle"
	CategoryIndustrial Category = "industrial"
)

// ParseCategory validates a raw category value.
func ParseCategory(raw string) (Category, error) {
	switch Category(raw) {
	case CategoryVehicle:
		return CategoryVehicle, nil
	case CategoryIndustrial:
		return CategoryIndustrial, nil
	default:
		return "", fmt.Errorf("catalog: unknown category %q", raw)
	}
}

// ServiceOffering is one bookable service with bilingual labels.
type ServiceOffering struct {
	ID          string
	Category    Category
	DisplayName map[locale.Locale]string
	Description map[locale.Locale]string
}

// Catalog holds the offering list in insertion order.
type Catalog struct {
	offerings []ServiceOffering
	byID      map[string]int
}

// New builds a catalog, rejecting duplicate ids and offerings missing a
// display name in either supported locale.
func New(offerings []ServiceOffering) (*Catalog, error) {
	c := &Catalog{
		offerings: make([]ServiceOffering, 0, len(offerings)),
		byID:      make(map[string]int, len(offerings)),
	}
	for _, o := range offerings {
		if o.ID == "" {
			return nil, fmt.Errorf("catalog: offering with empty id")
		}
		if _, dup := c.byID[o.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate offering id %q", o.ID)
		}
		if _, err := ParseCategory(string(o.Category)); err != nil {
			return nil, fmt.Errorf("catalog: offering %q: %w", o.ID, err)
		}
		for _, l := range []locale.Locale{locale.English, locale.Arabic} {
			if o.DisplayName[l] == "" {
				return nil, fmt.Errorf("catalog: offering %q missing %s display name", o.ID, l)
			}
		}
		c.byID[o.ID] = len(c.offerings)
		c.offerings = append(c.offerings, o)
	}
	return c, nil
}

// ListAll returns every offering in insertion order.
func (c *Catalog) ListAll() []ServiceOffering {
	out := make([]ServiceOffering, len(c.offerings))
	copy(out, c.offerings)
	return out
}

// ListByCategory returns offerings in the given category, insertion order
// preserved. An unknown category yields an empty slice.
func (c *Catalog) ListByCategory(category Category) []ServiceOffering {
	var out []ServiceOffering
	for _, o := range c.offerings {
		if o.Category == category {
			out = append(out, o)
		}
	}
	return out
}

// Get looks up an offering by id.
func (c *Catalog) Get(id string) (ServiceOffering, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return ServiceOffering{}, false
	}
	return c.offerings[idx], true
}

// ResolveDisplayName returns the offering's label for the locale, falling
// back to English when the locale has no entry.
func ResolveDisplayName(o ServiceOffering, l locale.Locale) string {
	if name := o.DisplayName[l]; name != "" {
		return name
	}
	return o.DisplayName[locale.English]
}

// ResolveDescription returns the localized description, empty when the
// offering has none.
func ResolveDescription(o ServiceOffering, l locale.Locale) string {
	if o.Description == nil {
		return ""
	}
	if desc := o.Description[l]; desc != "" {
		return desc
	}
	return o.Description[locale.English]
}
