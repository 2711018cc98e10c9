package domain

import (
	"time"

	"github.com/google/uuid"
)

// Outbound is a reply ready to be delivered, along with the message that produced it.
type Outbound struct {
	ID      uuid.UUID
	Author  string // author tag
	Content string // inbound content
	Reply   Reply
	At      time.Time
}

func NewOutbound(msg Message, reply Reply, at time.Time) Outbound {
	author := ""
	if msg.Author != nil {
		author = msg.Author.Tag()
	}
	return Outbound{
		ID:      uuid.New(),
		Author:  author,
		Content: msg.Content,
		Reply:   reply,
		At:      at,
	}
}
