package state

import (
	"time"

	"monreview/internal/monitor"
)

type Page int

const (
	PageSiteMenu Page = iota
	PageOKReview      // phase 1: confirm healthy clients
	PageProblems      // phase 2: fill problem forms
	PageDone          // submission accepted
)

// AppState holds the current snapshot of the review session
type AppState struct {
	Site        monitor.Site
	Items       []monitor.Item
	Query       string
	Notice      string
	NoticeIsErr bool
	Err         error
	LastLoaded  time.Time
	Loading     bool
	Submitting  bool
	CurrentPage Page
}
