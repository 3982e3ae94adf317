// SwipeFlix - Swipe-Driven Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swipeflix

package recommend

import (
	"sync"
	"testing"
)

func TestLedger_AppendAndHistory(t *testing.T) {
	t.Parallel()

	l := NewLedger(4)

	if _, ok := l.History(1); ok {
		t.Fatal("History() of unknown user should report false")
	}

	l.Append(1, "A", SwipeLike)
	l.Append(1, "B", SwipeDislike)
	rev := l.Append(1, "A", SwipeLike)

	if rev != 3 {
		t.Errorf("revision = %d, want 3", rev)
	}

	h, ok := l.History(1)
	if !ok {
		t.Fatal("History() should report true after a swipe")
	}
	if len(h.Liked) != 2 || h.Liked[0] != "A" || h.Liked[1] != "A" {
		t.Errorf("Liked = %v, want [A A]", h.Liked)
	}
	if len(h.Disliked) != 1 || h.Disliked[0] != "B" {
		t.Errorf("Disliked = %v, want [B]", h.Disliked)
	}
	if l.Revision(1) != 3 || l.Revision(2) != 0 {
		t.Errorf("Revision() = %d, %d, want 3, 0", l.Revision(1), l.Revision(2))
	}
}

func TestLedger_HistoryIsCopy(t *testing.T) {
	t.Parallel()

	l := NewLedger(1)
	l.Append(1, "A", SwipeLike)

	h, _ := l.History(1)
	h.Liked[0] = "mutated"

	again, _ := l.History(1)
	if again.Liked[0] != "A" {
		t.Errorf("ledger was mutated through a returned copy: %v", again.Liked)
	}
}

func TestLedger_NegativeUserIDs(t *testing.T) {
	t.Parallel()

	l := NewLedger(8)
	l.Append(-3, "A", SwipeLike)
	if _, ok := l.History(-3); !ok {
		t.Error("negative ids should still map to a shard")
	}
}

func TestLedger_ConcurrentAppends(t *testing.T) {
	t.Parallel()

	l := NewLedger(8)

	const writers = 16
	const perWriter = 50

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				l.Append(w%4+1, "T", SwipeLike)
				_, _ = l.History(w%4 + 1)
			}
		}(w)
	}
	wg.Wait()

	total := 0
	for u := 1; u <= 4; u++ {
		h, _ := l.History(u)
		total += len(h.Liked)
		if h.Revision != uint64(len(h.Liked)) {
			t.Errorf("user %d revision %d != liked %d", u, h.Revision, len(h.Liked))
		}
	}
	if total != writers*perWriter {
		t.Errorf("total likes = %d, want %d", total, writers*perWriter)
	}
	if l.Users() != 4 {
		t.Errorf("Users() = %d, want 4", l.Users())
	}
}
