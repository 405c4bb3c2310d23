package domain

type SearchResult struct {
	Users []*User
	Posts []*Post
}

func (r SearchResult) Empty() bool {
	return len(r.Users) == 0 && len(r.Posts) == 0
}
