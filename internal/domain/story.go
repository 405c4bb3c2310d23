package domain

import "time"

type Story struct {
	ID        string
	UserID    string
	Username  string
	Avatar    string
	Media     []Media
	CreatedAt time.Time
	Viewed    bool
}

// Clone returns a copy that shares no slices with s.
func (s Story) Clone() Story {
	s.Media = append([]Media(nil), s.Media...)
	return s
}
