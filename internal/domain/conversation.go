package domain

import "time"

// Conversation is a direct message thread with a single peer.
type Conversation struct {
	ID          string
	UserID      string
	Username    string
	Avatar      string
	LastMessage string
	UpdatedAt   time.Time
	Unread      bool
	Messages    []DirectMessage
}

type DirectMessage struct {
	ID        string
	SenderID  string
	Text      string
	CreatedAt time.Time
}

func (c Conversation) Clone() Conversation {
	c.Messages = append([]DirectMessage(nil), c.Messages...)
	return c
}
