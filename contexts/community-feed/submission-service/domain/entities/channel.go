package entities

import (
	"strings"
	"time"
)

// Channel is a topic-scoped container for posts. Topics are unique,
// case-sensitive, and never renamed or deleted once created.
type Channel struct {
	ChannelID string
	Topic     string
	CreatedAt time.Time
}

func (c Channel) ValidateCreate() bool {
	return strings.TrimSpace(c.ChannelID) != "" &&
		strings.TrimSpace(c.Topic) != ""
}
