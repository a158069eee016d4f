// Package notify keeps the user-facing event feed: order placed, status
// changed, item donated, and so on. Entries are persisted wholesale under
// the "notifications" state key and rendered newest-first.
package notify

import (
	"encoding/json"
	"time"

	"github.com/smartbytes/canteen/internal/state"
	"github.com/smartbytes/canteen/pkg/collection"
	"github.com/smartbytes/canteen/pkg/logger"
)

// Key is the state-repository key holding the notifications.
const Key = "notifications"

// Notification is one event message. The identifier is the creation
// timestamp in milliseconds, as in the browser client this replaces.
type Notification struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}

// Store is the notification store. It is the sole writer of the
// "notifications" key.
type Store struct {
	repo    state.Repository
	entries []Notification
	lastID  int64
}

// NewStore returns a notification store, restoring persisted entries.
// Corrupt or missing state degrades to an empty feed.
func NewStore(repo state.Repository) *Store {
	s := &Store{repo: repo}
	if data, found := repo.Load(Key); found {
		if err := json.Unmarshal(data, &s.entries); err != nil {
			logger.Warn("notify: corrupt persisted notifications, starting empty")
			s.entries = nil
		}
	}
	for _, n := range s.entries {
		if n.ID > s.lastID {
			s.lastID = n.ID
		}
	}
	return s
}

// Add prepends a new unread notification.
func (s *Store) Add(message string) Notification {
	now := time.Now()
	id := now.UnixMilli()
	// Two events in the same millisecond still get distinct ids.
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id

	n := Notification{
		ID:        id,
		Message:   message,
		Timestamp: now,
		Read:      false,
	}
	s.entries = append([]Notification{n}, s.entries...)
	s.persist()
	return n
}

// MarkRead flips the read flag for id. No-op on unknown id.
func (s *Store) MarkRead(id int64) {
	for i := range s.entries {
		if s.entries[i].ID == id {
			if !s.entries[i].Read {
				s.entries[i].Read = true
				s.persist()
			}
			return
		}
	}
}

// MarkAllRead flips every read flag.
func (s *Store) MarkAllRead() {
	changed := false
	for i := range s.entries {
		if !s.entries[i].Read {
			s.entries[i].Read = true
			changed = true
		}
	}
	if changed {
		s.persist()
	}
}

// ClearAll empties the feed.
func (s *Store) ClearAll() {
	s.entries = nil
	s.persist()
}

// UnreadCount is the number of entries still unread.
func (s *Store) UnreadCount() int {
	return len(collection.Filter(s.entries, func(n Notification) bool { return !n.Read }))
}

// All returns the entries in render order: timestamp descending, recomputed
// here regardless of storage order.
func (s *Store) All() []Notification {
	return collection.SortBy(s.entries, func(a, b Notification) bool {
		return a.Timestamp.After(b.Timestamp)
	})
}

func (s *Store) persist() {
	data, err := json.Marshal(s.entries)
	if err != nil {
		logger.Warn("notify: marshal", "error", err)
		return
	}
	if err := s.repo.Save(Key, data); err != nil {
		logger.Warn("notify: persist", "error", err)
	}
}
