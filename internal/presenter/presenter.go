package presenter

import "github.com/orgball2608/insta-feed/internal/domain"

//go:generate go run go.uber.org/mock/mockgen -source=presenter.go -destination=mocks/mock.go

// Client receives render instructions. Implementations are called while the
// caller holds its own lock and must not call back into the player or feed.
type Client interface {
	// Story viewer
	ShowViewer(story domain.Story)
	ShowMedia(story domain.Story, index int)
	SetProgress(storyID string, fraction float64)
	MarkViewed(storyID string)
	HideViewer()

	// Feed views
	RenderFeed(posts []*domain.Post)
	RenderStories(stories []*domain.Story)
	RenderProfile(user *domain.User, posts []*domain.Post)
	RenderSearch(query string, result domain.SearchResult)
	RenderInbox(conversations []*domain.Conversation)
	RenderConversation(conversation *domain.Conversation)

	Notify(message string)
}
