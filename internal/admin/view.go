package admin

import (
	"context"
	"sync"
	"time"

	"github.com/folio/backend/internal/model"
)

// Fetcher loads the full message list.
type Fetcher interface {
	Fetch(ctx context.Context) ([]*model.ContactMessage, error)
}

// View holds the last fetched list and the active search query.
type View struct {
	fetcher Fetcher

	mu        sync.RWMutex
	msgs      []*model.ContactMessage
	query     string
	fetchedAt time.Time
}

func NewView(f Fetcher) *View {
	return &View{fetcher: f}
}

// Refresh replaces the list with a fresh fetch. On error the previous list
// is kept.
func (v *View) Refresh(ctx context.Context) error {
	msgs, err := v.fetcher.Fetch(ctx)
	if err != nil {
		return err
	}
	v.mu.Lock()
	v.msgs = msgs
	v.fetchedAt = time.Now()
	v.mu.Unlock()
	return nil
}

func (v *View) SetQuery(q string) {
	v.mu.Lock()
	v.query = q
	v.mu.Unlock()
}

func (v *View) Query() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.query
}

// All returns every fetched message.
func (v *View) All() []*model.ContactMessage {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.msgs
}

// Visible returns the fetched messages matching the current query.
func (v *View) Visible() []*model.ContactMessage {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return Filter(v.msgs, v.query)
}

// Stats are computed over the whole list, not the filtered one.
func (v *View) Stats(now time.Time) Stats {
	return ComputeStats(v.All(), now)
}

// Find returns the message with the given id, if fetched.
func (v *View) Find(id int64) (*model.ContactMessage, bool) {
	for _, m := range v.All() {
		if m.ID == id {
			return m, true
		}
	}
	return nil, false
}

func (v *View) FetchedAt() time.Time {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.fetchedAt
}
