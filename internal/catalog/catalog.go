package catalog

import (
	"errors"
	"sort"
	"strings"

	"minimalbites/internal/domain"
)

var (
	ErrItemNotFound = errors.New("item not found")
)

// SortKey selects the ordering applied by Sort
type SortKey string

const (
	SortDefault   SortKey = "default"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortName      SortKey = "name"
)

// validSortKeys whitelists the accepted sort keys; anything else falls
// back to the default (input) order.
var validSortKeys = map[SortKey]bool{
	SortPriceLow:  true,
	SortPriceHigh: true,
	SortRating:    true,
	SortName:      true,
}

// Catalog exposes the fixed menu dataset. It is read-only: the add-item
// endpoint validates submissions but never writes into this list.
type Catalog struct {
	items []domain.MenuItem
	byID  map[int]domain.MenuItem
}

// New creates a Catalog over the built-in dataset
func New() *Catalog {
	byID := make(map[int]domain.MenuItem, len(menuItems))
	for _, item := range menuItems {
		byID[item.ID] = item
	}
	return &Catalog{items: menuItems, byID: byID}
}

// All returns the full item list in dataset order
func (c *Catalog) All() []domain.MenuItem {
	items := make([]domain.MenuItem, len(c.items))
	copy(items, c.items)
	return items
}

// Lookup returns the item with the given id
func (c *Catalog) Lookup(id int) (domain.MenuItem, error) {
	item, ok := c.byID[id]
	if !ok {
		return domain.MenuItem{}, ErrItemNotFound
	}
	return item, nil
}

// NextID returns the id an accepted submission would be assigned
func (c *Catalog) NextID() int {
	max := 0
	for _, item := range c.items {
		if item.ID > max {
			max = item.ID
		}
	}
	return max + 1
}

// Filter narrows items by a case-insensitive substring match on name or
// description and by an exact category match. An empty query matches
// everything; category "all" or "" disables the category filter. The
// two criteria compose by AND.
func Filter(items []domain.MenuItem, query, category string) []domain.MenuItem {
	query = strings.ToLower(strings.TrimSpace(query))
	category = strings.ToLower(strings.TrimSpace(category))

	result := []domain.MenuItem{}
	for _, item := range items {
		if query != "" &&
			!strings.Contains(strings.ToLower(item.Name), query) &&
			!strings.Contains(strings.ToLower(item.Description), query) {
			continue
		}
		if category != "" && category != "all" &&
			strings.ToLower(item.Category) != category {
			continue
		}
		result = append(result, item)
	}
	return result
}

// Sort reorders items by the given key and returns the same slice. An
// unknown key leaves the order untouched. No stability guarantee: ties
// break arbitrarily.
func Sort(items []domain.MenuItem, key SortKey) []domain.MenuItem {
	if !validSortKeys[key] {
		return items
	}

	switch key {
	case SortPriceLow:
		sort.Slice(items, func(i, j int) bool { return items[i].Price < items[j].Price })
	case SortPriceHigh:
		sort.Slice(items, func(i, j int) bool { return items[i].Price > items[j].Price })
	case SortRating:
		sort.Slice(items, func(i, j int) bool { return items[i].Rating > items[j].Rating })
	case SortName:
		sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	}
	return items
}
