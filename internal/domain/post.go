package domain

import "time"

type Post struct {
	ID        string
	UserID    string
	Username  string
	Avatar    string
	Media     []Media
	Caption   string
	Likes     int
	IsLiked   bool
	Comments  []Comment // oldest first
	CreatedAt time.Time
}

type Comment struct {
	ID        string
	UserID    string
	Username  string
	Text      string
	CreatedAt time.Time
}

// Clone returns a copy that shares no slices with p.
func (p Post) Clone() Post {
	p.Media = append([]Media(nil), p.Media...)
	p.Comments = append([]Comment(nil), p.Comments...)
	return p
}
