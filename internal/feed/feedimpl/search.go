package feedimpl

import (
	"context"
	"fmt"
	"strings"

	"github.com/orgball2608/insta-feed/internal/domain"
	"github.com/samber/lo"
)

// Search matches users by username and posts by caption or author, ignoring
// case. The current user never shows up among the users.
func (f *FeedImpl) Search(ctx context.Context, query string) (domain.SearchResult, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return domain.SearchResult{}, nil
	}

	users, err := f.UserRepo.List(ctx)
	if err != nil {
		return domain.SearchResult{}, fmt.Errorf("failed to list users: %w", err)
	}
	posts, err := f.PostRepo.List(ctx)
	if err != nil {
		return domain.SearchResult{}, fmt.Errorf("failed to list posts: %w", err)
	}

	return domain.SearchResult{
		Users: lo.Filter(users, func(u *domain.User, _ int) bool {
			return u.ID != f.currentUserID && strings.Contains(strings.ToLower(u.Username), q)
		}),
		Posts: lo.Filter(posts, func(p *domain.Post, _ int) bool {
			return strings.Contains(strings.ToLower(p.Caption), q) ||
				strings.Contains(strings.ToLower(p.Username), q)
		}),
	}, nil
}
