package admin

import (
	"net/url"
	"strings"

	"github.com/folio/backend/internal/model"
)

const replySubject = "Re: Your message"

// ReplyLink returns a mailto: URL addressed to the sender with the reply
// subject filled in.
func ReplyLink(msg *model.ContactMessage) string {
	u := url.URL{Scheme: "mailto", Opaque: msg.Email}
	// url.Values encodes spaces as '+', which mail clients show literally.
	u.RawQuery = "subject=" + strings.ReplaceAll(url.QueryEscape(replySubject), "+", "%20")
	return u.String()
}
