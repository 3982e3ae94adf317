// SwipeFlix - Swipe-Driven Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swipeflix

package algorithms

import (
	"sort"

	"github.com/tomtom215/swipeflix/internal/catalog"
)

// InteractionMatrix is a dense user x item pivot of ratings.
//
// Rows are ordered by ascending user id and columns by ascending item id.
// The matrix is immutable once built.
type InteractionMatrix struct {
	users     []int
	items     []int
	userIndex map[int]int
	itemIndex map[int]int
	values    [][]float64

	// nonzero holds, per row, the column indices with a non-zero value in
	// ascending order.
	nonzero [][]int
}

// BuildInteractionMatrix pivots ratings into a dense matrix. Missing cells
// are 0 and when a (user, item) pair repeats the last value wins.
func BuildInteractionMatrix(ratings []catalog.Rating) *InteractionMatrix {
	userSet := make(map[int]struct{})
	itemSet := make(map[int]struct{})
	for _, r := range ratings {
		userSet[r.UserID] = struct{}{}
		itemSet[r.ItemID] = struct{}{}
	}

	m := &InteractionMatrix{
		users: sortedKeys(userSet),
		items: sortedKeys(itemSet),
	}
	m.userIndex = indexOf(m.users)
	m.itemIndex = indexOf(m.items)

	m.values = make([][]float64, len(m.users))
	backing := make([]float64, len(m.users)*len(m.items))
	for i := range m.values {
		m.values[i] = backing[i*len(m.items) : (i+1)*len(m.items) : (i+1)*len(m.items)]
	}

	for _, r := range ratings {
		m.values[m.userIndex[r.UserID]][m.itemIndex[r.ItemID]] = r.Value
	}

	m.nonzero = make([][]int, len(m.users))
	for i, row := range m.values {
		cols := make([]int, 0, 32)
		for k, v := range row {
			if v != 0 {
				cols = append(cols, k)
			}
		}
		m.nonzero[i] = cols
	}

	return m
}

// NumUsers returns the number of rows.
func (m *InteractionMatrix) NumUsers() int {
	return len(m.users)
}

// NumItems returns the number of columns.
func (m *InteractionMatrix) NumItems() int {
	return len(m.items)
}

// Users returns the row user ids in ascending order. The slice must not be
// modified.
func (m *InteractionMatrix) Users() []int {
	return m.users
}

// Items returns the column item ids in ascending order. The slice must not be
// modified.
func (m *InteractionMatrix) Items() []int {
	return m.items
}

// UserIndex returns the row index for a user id.
func (m *InteractionMatrix) UserIndex(userID int) (int, bool) {
	i, ok := m.userIndex[userID]
	return i, ok
}

// ItemIndex returns the column index for an item id.
func (m *InteractionMatrix) ItemIndex(itemID int) (int, bool) {
	k, ok := m.itemIndex[itemID]
	return k, ok
}

// Rating returns the cell for (userID, itemID), or 0 when either is unknown.
func (m *InteractionMatrix) Rating(userID, itemID int) float64 {
	i, ok := m.userIndex[userID]
	if !ok {
		return 0
	}
	k, ok := m.itemIndex[itemID]
	if !ok {
		return 0
	}
	return m.values[i][k]
}

// Row returns the dense row at index i. The slice must not be modified.
func (m *InteractionMatrix) Row(i int) []float64 {
	return m.values[i]
}

// Nonzero returns the ascending column indices with a non-zero value in row i.
func (m *InteractionMatrix) Nonzero(i int) []int {
	return m.nonzero[i]
}

func sortedKeys(set map[int]struct{}) []int {
	keys := make([]int, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func indexOf(ids []int) map[int]int {
	index := make(map[int]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}
	return index
}
