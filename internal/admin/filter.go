package admin

import (
	"strings"

	"github.com/folio/backend/internal/model"
)

// Filter keeps the messages whose name, email or message contains query,
// ignoring case. A blank query keeps everything. Order is preserved.
func Filter(msgs []*model.ContactMessage, query string) []*model.ContactMessage {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return msgs
	}
	out := make([]*model.ContactMessage, 0, len(msgs))
	for _, m := range msgs {
		if strings.Contains(strings.ToLower(m.Name), q) ||
			strings.Contains(strings.ToLower(m.Email), q) ||
			strings.Contains(strings.ToLower(m.Message), q) {
			out = append(out, m)
		}
	}
	return out
}
