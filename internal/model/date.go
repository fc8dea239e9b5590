package model

import "time"

// DateLayout is ISO calendar date layout used for interaction and follow-up dates
const DateLayout = "2006-01-02"

// Today returns ISO calendar date of t in UTC
func Today(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
