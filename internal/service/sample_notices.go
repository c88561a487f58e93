package service

import (
	"time"

	"cgtsc/website/internal/model"
)

// SampleNotices is served when no snapshot exists and the source is unreachable.
func SampleNotices() []model.Notice {
	return []model.Notice{
		{
			Title:       "Welcome to New Academic Year 2025",
			Description: "Classes will commence from January 20, 2025",
			Date:        model.DateOf(time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)),
		},
		{
			Title:       "Admission Open for Technical Programs",
			Description: "Applications are now open for all technical courses",
			Date:        model.DateOf(time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)),
		},
		{
			Title:       "Annual Sports Day",
			Description: "Sports competition will be held on February 15, 2025",
			Date:        model.DateOf(time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)),
		},
	}
}
