// Package domain contains core concepts of the queue bot.
// This file defines inbound Messages.
// Messages are transient: built per inbound event, discarded after dispatch.
package domain

// Message represents an inbound chat event.
// Mentions are extracted by the transport; their order carries no meaning
// but is preserved for display.
type Message struct {
	Author   User
	Content  string
	Mentions []User
}

func NewMessage(author User, content string, mentions ...User) Message {
	return Message{Author: author, Content: content, Mentions: mentions}
}
