package domain

import "time"

// Post is the domain model for a published blog entry.
type Post struct {
	ID        string
	Title     string
	Content   string
	Author    string
	CreatedAt time.Time
}
