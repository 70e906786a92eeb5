package admin

import (
	"time"

	"github.com/folio/backend/internal/model"
)

// Stats summarizes a message list.
type Stats struct {
	Total    int
	ThisWeek int
	Today    int
}

// ComputeStats counts msgs relative to now. ThisWeek is a rolling seven days;
// Today is the calendar day of now in now's location.
func ComputeStats(msgs []*model.ContactMessage, now time.Time) Stats {
	weekAgo := now.Add(-7 * 24 * time.Hour)
	y, m, d := now.Date()
	loc := now.Location()

	s := Stats{Total: len(msgs)}
	for _, msg := range msgs {
		if msg.CreatedAt.After(weekAgo) {
			s.ThisWeek++
		}
		my, mm, md := msg.CreatedAt.In(loc).Date()
		if my == y && mm == m && md == d {
			s.Today++
		}
	}
	return s
}
