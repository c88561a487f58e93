package model

import "time"

// NoticeSnapshot is the last notice list fetched from the upstream source.
type NoticeSnapshot struct {
	Notices   []Notice
	Source    string
	FetchedAt time.Time
}
