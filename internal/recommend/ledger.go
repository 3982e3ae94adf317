// SwipeFlix - Swipe-Driven Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swipeflix

package recommend

import (
	"sync"
)

// History is a point-in-time copy of one user's swipes.
type History struct {
	// Liked and Disliked hold titles in swipe order, duplicates included.
	Liked    []string
	Disliked []string

	// Revision increases by one with every recorded swipe.
	Revision uint64
}

type ledgerEntry struct {
	liked    []string
	disliked []string
	revision uint64
}

type ledgerShard struct {
	mu    sync.RWMutex
	users map[int]*ledgerEntry
}

// Ledger is the process-lifetime swipe history of every user.
//
// Users are spread over independently locked shards. An append is atomic
// with respect to readers of the same user and readers always receive
// copies.
type Ledger struct {
	shards []*ledgerShard
}

// NewLedger creates an empty ledger with the given number of shards.
func NewLedger(shards int) *Ledger {
	if shards < 1 {
		shards = 1
	}
	l := &Ledger{shards: make([]*ledgerShard, shards)}
	for i := range l.shards {
		l.shards[i] = &ledgerShard{users: make(map[int]*ledgerEntry)}
	}
	return l
}

func (l *Ledger) shard(userID int) *ledgerShard {
	idx := userID % len(l.shards)
	if idx < 0 {
		idx = -idx
	}
	return l.shards[idx]
}

// Append records a swipe and returns the user's new revision.
func (l *Ledger) Append(userID int, title string, swipe SwipeType) uint64 {
	s := l.shard(userID)
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.users[userID]
	if !ok {
		entry = &ledgerEntry{}
		s.users[userID] = entry
	}

	if swipe == SwipeLike {
		entry.liked = append(entry.liked, title)
	} else {
		entry.disliked = append(entry.disliked, title)
	}
	entry.revision++
	return entry.revision
}

// History returns a copy of the user's swipes. The boolean is false when the
// user has never swiped.
func (l *Ledger) History(userID int) (History, bool) {
	s := l.shard(userID)
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.users[userID]
	if !ok {
		return History{}, false
	}
	return History{
		Liked:    append([]string(nil), entry.liked...),
		Disliked: append([]string(nil), entry.disliked...),
		Revision: entry.revision,
	}, true
}

// Revision returns the user's current revision, 0 when the user has never
// swiped.
func (l *Ledger) Revision(userID int) uint64 {
	s := l.shard(userID)
	s.mu.RLock()
	defer s.mu.RUnlock()

	if entry, ok := s.users[userID]; ok {
		return entry.revision
	}
	return 0
}

// Users returns the number of users with at least one swipe.
func (l *Ledger) Users() int {
	total := 0
	for _, s := range l.shards {
		s.mu.RLock()
		total += len(s.users)
		s.mu.RUnlock()
	}
	return total
}
