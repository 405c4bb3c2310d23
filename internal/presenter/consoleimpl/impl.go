package consoleimpl

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/insta-feed/internal/domain"
	"github.com/orgball2608/insta-feed/internal/presenter"
	"github.com/orgball2608/insta-feed/pkg/config"
	"github.com/orgball2608/insta-feed/pkg/formatter"
	"go.uber.org/fx"
)

const progressSteps = 4

type Opts struct {
	fx.In

	Clock  clockwork.Clock
	Config *config.Config
	Out    io.Writer `optional:"true"`
}

// ConsoleImpl renders everything as plain text lines.
type ConsoleImpl struct {
	mu            sync.Mutex
	out           io.Writer
	clock         clockwork.Clock
	currentUserID string
	lastStep      int
}

func New(opts Opts) *ConsoleImpl {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	return &ConsoleImpl{
		out:           out,
		clock:         opts.Clock,
		currentUserID: opts.Config.Feed.CurrentUserID,
		lastStep:      -1,
	}
}

var _ presenter.Client = (*ConsoleImpl)(nil)

func (c *ConsoleImpl) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

func (c *ConsoleImpl) ShowViewer(story domain.Story) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.printf("▶ @%s · %s", story.Username, formatter.TimeAgo(c.clock.Now(), story.CreatedAt))
}

func (c *ConsoleImpl) ShowMedia(story domain.Story, index int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	m := story.Media[index]
	c.printf("  [%d/%d] %s %s", index+1, len(story.Media), m.Kind, m.Source)
}

// SetProgress prints a bar only when the fraction enters a new quarter, so a
// 5s item at 50ms ticks produces five lines instead of a hundred.
func (c *ConsoleImpl) SetProgress(_ string, fraction float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	step := int(fraction * progressSteps)
	if step == c.lastStep {
		return
	}
	c.lastStep = step
	c.printf("  %s%s %3.0f%%",
		strings.Repeat("█", step), strings.Repeat("░", progressSteps-step), fraction*100)
}

func (c *ConsoleImpl) MarkViewed(storyID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.printf("  (story %s viewed)", storyID)
}

func (c *ConsoleImpl) HideViewer() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastStep = -1
	c.printf("■ viewer closed")
}

func (c *ConsoleImpl) RenderFeed(posts []*domain.Post) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(posts) == 0 {
		c.printf("No posts yet.")
		return
	}
	now := c.clock.Now()
	for _, p := range posts {
		liked := "♡"
		if p.IsLiked {
			liked = "♥"
		}
		c.printf("#%s @%s · %s", p.ID, p.Username, formatter.TimeAgo(now, p.CreatedAt))
		if len(p.Media) > 0 {
			c.printf("  %s %s (1/%d)", p.Media[0].Kind, p.Media[0].Source, len(p.Media))
		}
		c.printf("  %s %s", liked, formatter.Likes(p.Likes))
		if p.Caption != "" {
			c.printf("  %s %s", p.Username, p.Caption)
		}
		if len(p.Comments) > 0 {
			c.printf("  View all %d comments", len(p.Comments))
		}
	}
}

func (c *ConsoleImpl) RenderStories(stories []*domain.Story) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(stories) == 0 {
		c.printf("No stories.")
		return
	}
	for _, s := range stories {
		mark := "●"
		if s.Viewed {
			mark = "○"
		}
		c.printf("%s %s @%s (%d)", mark, s.ID, s.Username, len(s.Media))
	}
}

func (c *ConsoleImpl) RenderProfile(user *domain.User, posts []*domain.Post) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.printf("@%s", user.Username)
	if user.Bio != "" {
		c.printf("  %s", user.Bio)
	}
	c.printf("  %s posts · %s followers · %s following",
		formatter.FormatNumber(user.Posts), formatter.FormatNumber(user.Followers), formatter.FormatNumber(user.Following))
	if len(posts) == 0 {
		c.printf("  No Posts Yet")
		return
	}
	for _, p := range posts {
		c.printf("  #%s ♥ %d 💬 %d", p.ID, p.Likes, len(p.Comments))
	}
}

func (c *ConsoleImpl) RenderSearch(query string, result domain.SearchResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if result.Empty() {
		c.printf("No results found for %q", query)
		return
	}
	if len(result.Users) > 0 {
		c.printf("USERS")
		for _, u := range result.Users {
			c.printf("  @%s %s", u.Username, u.Bio)
		}
	}
	if len(result.Posts) > 0 {
		c.printf("POSTS")
		for _, p := range result.Posts {
			c.printf("  #%s @%s %s", p.ID, p.Username, p.Caption)
		}
	}
}

func (c *ConsoleImpl) RenderInbox(conversations []*domain.Conversation) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	for _, conv := range conversations {
		unread := " "
		if conv.Unread {
			unread = "•"
		}
		c.printf("%s %s @%s: %s · %s", unread, conv.ID, conv.Username, conv.LastMessage, formatter.TimeAgo(now, conv.UpdatedAt))
	}
}

func (c *ConsoleImpl) RenderConversation(conv *domain.Conversation) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.printf("@%s", conv.Username)
	for _, m := range conv.Messages {
		who := conv.Username
		if m.SenderID == c.currentUserID {
			who = "you"
		}
		c.printf("  %s: %s (%s)", who, m.Text, formatter.MessageTime(m.CreatedAt))
	}
}

func (c *ConsoleImpl) Notify(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.printf("%s", message)
}
