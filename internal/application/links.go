package application

import (
	"fmt"
	"net/url"
)

// AppLinks holds the outbound app actions: store rating, share-this-app
// message and the feedback email draft. All fire-and-forget; surfaces just
// present them.
type AppLinks struct {
	StoreURL        string
	ShareMessage    string
	FeedbackEmail   string
	FeedbackSubject string
	FeedbackBody    string
}

// FeedbackMailto builds the mailto draft URL for the feedback action.
func (l AppLinks) FeedbackMailto() string {
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		l.FeedbackEmail,
		url.QueryEscape(l.FeedbackSubject),
		url.QueryEscape(l.FeedbackBody),
	)
}
