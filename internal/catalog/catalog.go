// SwipeFlix - Swipe-Driven Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swipeflix

package catalog

import (
	"sort"
	"strings"
)

// Catalog is the immutable, in-memory view of the items and ratings tables.
type Catalog struct {
	items   []Item
	ratings []Rating
	byID    map[int]int
	byTitle map[string]int
	stats   map[int]ItemStats
	users   int
}

// New assembles a Catalog from parsed tables. When an item id or title
// repeats, lookups resolve to the first occurrence in catalog order.
func New(items []Item, ratings []Rating) (*Catalog, error) {
	if len(items) == 0 {
		return nil, &SchemaError{Source: sourceItems, Reason: "no rows"}
	}
	if len(ratings) == 0 {
		return nil, &SchemaError{Source: sourceRatings, Reason: "no rows"}
	}

	c := &Catalog{
		items:   items,
		ratings: ratings,
		byID:    make(map[int]int, len(items)),
		byTitle: make(map[string]int, len(items)),
	}

	for i := range items {
		if _, ok := c.byID[items[i].ID]; !ok {
			c.byID[items[i].ID] = i
		}
		if _, ok := c.byTitle[items[i].Title]; !ok {
			c.byTitle[items[i].Title] = i
		}
	}

	c.computeStats()
	return c, nil
}

// computeStats aggregates rating counts and means per item.
func (c *Catalog) computeStats() {
	sums := make(map[int]float64)
	counts := make(map[int]int)
	users := make(map[int]struct{})

	for _, r := range c.ratings {
		sums[r.ItemID] += r.Value
		counts[r.ItemID]++
		users[r.UserID] = struct{}{}
	}

	c.stats = make(map[int]ItemStats, len(counts))
	for id, n := range counts {
		c.stats[id] = ItemStats{Count: n, Mean: sums[id] / float64(n)}
	}
	c.users = len(users)
}

// Items returns the items in catalog order. The slice must not be modified.
func (c *Catalog) Items() []Item {
	return c.items
}

// Ratings returns the ratings in input order. The slice must not be modified.
func (c *Catalog) Ratings() []Rating {
	return c.ratings
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// UserCount returns the number of distinct users in the ratings table.
func (c *Catalog) UserCount() int {
	return c.users
}

// ItemByID returns the item with the given id.
func (c *Catalog) ItemByID(id int) (Item, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Item{}, false
	}
	return c.items[idx], true
}

// IndexOfTitle returns the catalog position of the exact (trimmed) title.
func (c *Catalog) IndexOfTitle(title string) (int, bool) {
	idx, ok := c.byTitle[strings.TrimSpace(title)]
	return idx, ok
}

// ItemByTitle returns the item with the exact (trimmed) title.
func (c *Catalog) ItemByTitle(title string) (Item, bool) {
	idx, ok := c.IndexOfTitle(title)
	if !ok {
		return Item{}, false
	}
	return c.items[idx], true
}

// Stats returns the rating aggregates for an item.
func (c *Catalog) Stats(itemID int) ItemStats {
	return c.stats[itemID]
}

// Popular returns up to n items ordered by rating count, then mean rating,
// then catalog order.
func (c *Catalog) Popular(n int) []Item {
	if n <= 0 {
		return []Item{}
	}

	order := make([]int, len(c.items))
	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(a, b int) bool {
		sa := c.stats[c.items[order[a]].ID]
		sb := c.stats[c.items[order[b]].ID]
		if sa.Count != sb.Count {
			return sa.Count > sb.Count
		}
		return sa.Mean > sb.Mean
	})

	if n > len(order) {
		n = len(order)
	}
	out := make([]Item, n)
	for i := 0; i < n; i++ {
		out[i] = c.items[order[i]]
	}
	return out
}
