package food

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidCatalog is wrapped by every catalog validation failure.
var ErrInvalidCatalog = errors.New("invalid food catalog")

// Item is a single selectable food. Items are plain values; two items are
// equal when all of their fields are equal.
type Item struct {
	Name    string  `yaml:"name" json:"name"`
	Image   string  `yaml:"image" json:"image"`     // Emoji or emoji pair
	Calorie float64 `yaml:"calorie" json:"calorie"` // kcal
	Carb    float64 `yaml:"carb" json:"carb"`       // grams
	Fat     float64 `yaml:"fat" json:"fat"`         // grams
	Protein float64 `yaml:"protein" json:"protein"` // grams
}

// Catalog is an ordered, read-only list of food items.
type Catalog struct {
	items []Item
	index map[string]int
}

// New builds a catalog from the given items after validating them.
// The items are copied; later changes to the argument slice have no effect.
func New(items ...Item) (*Catalog, error) {
	if errs := Validate(items); len(errs) > 0 {
		return nil, joinValidation(errs)
	}

	c := &Catalog{
		items: make([]Item, len(items)),
		index: make(map[string]int, len(items)),
	}
	copy(c.items, items)
	for i, item := range c.items {
		c.index[item.Name] = i
	}
	return c, nil
}

// MustNew is like New but panics on invalid input. Intended for tests and
// package-level fixtures.
func MustNew(items ...Item) *Catalog {
	c, err := New(items...)
	if err != nil {
		panic(err)
	}
	return c
}

// List returns the catalog items in order. The returned slice is a copy.
func (c *Catalog) List() []Item {
	if c == nil {
		return nil
	}
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of items in the catalog.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// At returns the item at position i.
func (c *Catalog) At(i int) Item {
	return c.items[i]
}

// Find looks up an item by name.
func (c *Catalog) Find(name string) (Item, bool) {
	if c == nil {
		return Item{}, false
	}
	i, ok := c.index[name]
	if !ok {
		return Item{}, false
	}
	return c.items[i], true
}

// Names returns the item names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, c.Len())
	for _, item := range c.List() {
		names = append(names, item.Name)
	}
	return names
}

// Validate checks a list of items and returns every problem found
// (empty if valid).
func Validate(items []Item) []error {
	var errs []error

	if len(items) == 0 {
		return []error{fmt.Errorf("%w: catalog has no items", ErrInvalidCatalog)}
	}

	seen := make(map[string]int, len(items))
	for i, item := range items {
		pos := i + 1
		name := strings.TrimSpace(item.Name)
		if name == "" {
			errs = append(errs, fmt.Errorf("%w: item %d has no name", ErrInvalidCatalog, pos))
		} else if prev, dup := seen[name]; dup {
			errs = append(errs, fmt.Errorf("%w: item %d duplicates name %q (first seen at item %d)",
				ErrInvalidCatalog, pos, name, prev))
		} else {
			seen[name] = pos
		}

		if item.Image == "" {
			errs = append(errs, fmt.Errorf("%w: item %d (%s) has no image", ErrInvalidCatalog, pos, item.Name))
		}

		for _, f := range []struct {
			field string
			value float64
		}{
			{"calorie", item.Calorie},
			{"carb", item.Carb},
			{"fat", item.Fat},
			{"protein", item.Protein},
		} {
			switch {
			case math.IsNaN(f.value) || math.IsInf(f.value, 0):
				errs = append(errs, fmt.Errorf("%w: item %d (%s) has non-finite %s: %v",
					ErrInvalidCatalog, pos, item.Name, f.field, f.value))
			case f.value < 0:
				errs = append(errs, fmt.Errorf("%w: item %d (%s) has negative %s: %v",
					ErrInvalidCatalog, pos, item.Name, f.field, f.value))
			}
		}
	}

	return errs
}

func joinValidation(errs []error) error {
	if len(errs) == 1 {
		return errs[0]
	}
	return errors.Join(errs...)
}
