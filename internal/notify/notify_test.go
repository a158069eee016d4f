package notify

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartbytes/canteen/internal/state"
)

func TestAddAssignsDistinctIncreasingIDs(t *testing.T) {
	s := NewStore(state.NewMemory())

	// Burst of adds lands inside the same millisecond; ids must still be
	// strictly increasing.
	a := s.Add("Order #1 placed successfully!")
	b := s.Add("Order #1 is now PREPARING.")
	c := s.Add("Order #1 is now READY_FOR_PICKUP.")

	assert.Greater(t, b.ID, a.ID)
	assert.Greater(t, c.ID, b.ID)
	assert.False(t, a.Read)
}

func TestUnreadCountAndMarkRead(t *testing.T) {
	s := NewStore(state.NewMemory())
	a := s.Add("one")
	s.Add("two")

	assert.Equal(t, 2, s.UnreadCount())

	s.MarkRead(a.ID)
	assert.Equal(t, 1, s.UnreadCount())

	// Marking again or marking an unknown id changes nothing.
	s.MarkRead(a.ID)
	s.MarkRead(99999)
	assert.Equal(t, 1, s.UnreadCount())

	s.MarkAllRead()
	assert.Zero(t, s.UnreadCount())
}

func TestAllSortsNewestFirst(t *testing.T) {
	repo := state.NewMemory()

	// Persist entries out of order, oldest in front.
	now := time.Now()
	stored := []Notification{
		{ID: 1, Message: "old", Timestamp: now.Add(-2 * time.Hour)},
		{ID: 3, Message: "new", Timestamp: now},
		{ID: 2, Message: "mid", Timestamp: now.Add(-time.Hour)},
	}
	data, err := json.Marshal(stored)
	require.NoError(t, err)
	require.NoError(t, repo.Save(Key, data))

	s := NewStore(repo)
	all := s.All()
	require.Len(t, all, 3)
	assert.Equal(t, "new", all[0].Message)
	assert.Equal(t, "mid", all[1].Message)
	assert.Equal(t, "old", all[2].Message)
}

func TestRestoredStoreKeepsIDsMonotonic(t *testing.T) {
	repo := state.NewMemory()

	first := NewStore(repo)
	last := first.Add("existing")

	second := NewStore(repo)
	next := second.Add("fresh")
	assert.Greater(t, next.ID, last.ID)
}

func TestClearAll(t *testing.T) {
	repo := state.NewMemory()
	s := NewStore(repo)
	s.Add("one")

	s.ClearAll()
	assert.Empty(t, s.All())

	// The cleared feed is what a restart sees.
	assert.Empty(t, NewStore(repo).All())
}

func TestCorruptStateStartsEmpty(t *testing.T) {
	repo := state.NewMemory()
	require.NoError(t, repo.Save(Key, []byte("not json")))

	s := NewStore(repo)
	assert.Empty(t, s.All())
	assert.Zero(t, s.UnreadCount())
}
