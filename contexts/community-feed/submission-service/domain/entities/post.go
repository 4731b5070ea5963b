package entities

import (
	"strings"
	"time"
)

// Post is immutable after creation; the vote tally shown next to it is a
// derived read owned by the voting service.
type Post struct {
	PostID    string
	Title     string
	Body      string
	Image     string
	ChannelID string
	Author    string
	CreatedAt time.Time
}

func (p Post) ValidateCreate() bool {
	return strings.TrimSpace(p.PostID) != "" &&
		strings.TrimSpace(p.Title) != "" &&
		strings.TrimSpace(p.ChannelID) != "" &&
		strings.TrimSpace(p.Author) != ""
}
