// Package monitor defines the monitored-item model, the review sites and
// the providers that load items for a site.
package monitor

import (
	"context"
	"fmt"
	"strings"
)

// Field is one label/value pair of display metadata attached to an item.
type Field struct {
	Label string
	Value string
}

// Item is one monitored client/unit for the active site. The core never
// mutates items; they are loaded once per site and treated as immutable.
type Item struct {
	ID    int64
	Label string
	Name  string
	Code  string

	// Site-specific extras (backup job counts, agent versions...), opaque
	// to the review engine and only surfaced through Site.RowMeta.
	Fields []Field
}

// Title returns the display title using the fallback chain
// label -> name -> code -> "ID <id>".
func (it Item) Title() string {
	if it.Label != "" {
		return it.Label
	}
	if it.Name != "" {
		return it.Name
	}
	if it.Code != "" {
		return it.Code
	}
	return fmt.Sprintf("ID %d", it.ID)
}

// IDs returns the ids of the given items, in order.
func IDs(items []Item) []int64 {
	out := make([]int64, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

// FilterItems returns the items whose title, name or code contains the query
// (case-insensitive). An empty query returns the input unchanged.
func FilterItems(items []Item, query string) []Item {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return items
	}
	var out []Item
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Title()), query) ||
			strings.Contains(strings.ToLower(it.Name), query) ||
			strings.Contains(strings.ToLower(it.Code), query) {
			out = append(out, it)
		}
	}
	return out
}

// ItemProvider loads the monitored items for a site.
type ItemProvider interface {
	LoadItems(ctx context.Context, site Site) ([]Item, error)
}

// StaticProvider serves a fixed item list per site. Used by the dry-run
// binary and in tests.
type StaticProvider map[Site][]Item

func (p StaticProvider) LoadItems(_ context.Context, site Site) ([]Item, error) {
	items, ok := p[site]
	if !ok {
		return nil, fmt.Errorf("no items configured for site %q", site)
	}
	return items, nil
}
