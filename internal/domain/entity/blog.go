package entity

import "time"

// Blog is an editorial post shown on the public blog pages. It exists only as
// navigation context for the blog-detail page.
type Blog struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	Author      string    `json:"author"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Tags        []string  `json:"tags"`
	PublishedAt time.Time `json:"publishedAt"`
}
