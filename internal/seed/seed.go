// Package seed fills the in-memory repositories with the demo data the feed
// starts with.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/insta-feed/internal/domain"
	"github.com/orgball2608/insta-feed/internal/repositories/conversation"
	"github.com/orgball2608/insta-feed/internal/repositories/post"
	"github.com/orgball2608/insta-feed/internal/repositories/story"
	"github.com/orgball2608/insta-feed/internal/repositories/user"
	"github.com/orgball2608/insta-feed/pkg/logger"
	"github.com/samber/lo"
	"go.uber.org/fx"
)

const (
	avatarMe       = "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg?auto=compress&cs=tinysrgb&w=150"
	avatarArtist   = "https://images.pexels.com/photos/697509/pexels-photo-697509.jpeg?auto=compress&cs=tinysrgb&w=150"
	avatarTraveler = "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg?auto=compress&cs=tinysrgb&w=150"
	photoSunset    = "https://images.pexels.com/photos/1308624/pexels-photo-1308624.jpeg?auto=compress&cs=tinysrgb&w=600"
	photoMountains = "https://images.pexels.com/photos/1010973/pexels-photo-1010973.jpeg?auto=compress&cs=tinysrgb&w=600"
)

// Dataset is a full set of feed records, ordered the way they are displayed.
type Dataset struct {
	Users         []domain.User
	Posts         []domain.Post
	Stories       []domain.Story
	Conversations []domain.Conversation
}

// Demo builds the demo dataset with timestamps relative to now.
func Demo(now time.Time) Dataset {
	ago := func(d time.Duration) time.Time { return now.Add(-d) }

	return Dataset{
		Users: []domain.User{
			{ID: "1", Username: "myusername", Avatar: avatarMe, Bio: "Living my best life 📸✨", Followers: 1250, Following: 890, Posts: 42},
			{ID: "2", Username: "photoartist", Avatar: avatarArtist, Bio: "Photography enthusiast 📷", Followers: 2100, Following: 345, Posts: 128},
			{ID: "3", Username: "traveler", Avatar: avatarTraveler, Bio: "World explorer 🌍", Followers: 890, Following: 567, Posts: 89},
		},
		Posts: []domain.Post{
			{
				ID: "1", UserID: "2", Username: "photoartist", Avatar: avatarArtist,
				Media:   []domain.Media{{Kind: domain.MediaImage, Source: photoSunset}},
				Caption: "Beautiful sunset today 🌅 #nature #photography",
				Likes:   124,
				Comments: []domain.Comment{
					{ID: "1", UserID: "1", Username: "myusername", Text: "Amazing shot! 😍", CreatedAt: ago(time.Hour)},
				},
				CreatedAt: ago(2 * time.Hour),
			},
			{
				ID: "2", UserID: "3", Username: "traveler", Avatar: avatarTraveler,
				Media:     []domain.Media{{Kind: domain.MediaImage, Source: photoMountains}},
				Caption:   "Adventure awaits! 🗻 #travel #mountains",
				Likes:     89,
				IsLiked:   true,
				CreatedAt: ago(5 * time.Hour),
			},
		},
		Stories: []domain.Story{
			{
				ID: "1", UserID: "2", Username: "photoartist", Avatar: avatarArtist,
				Media:     []domain.Media{{Kind: domain.MediaImage, Source: photoSunset}},
				CreatedAt: ago(time.Hour),
			},
			{
				ID: "2", UserID: "3", Username: "traveler", Avatar: avatarTraveler,
				Media:     []domain.Media{{Kind: domain.MediaImage, Source: photoMountains}},
				CreatedAt: ago(3 * time.Hour),
				Viewed:    true,
			},
		},
		Conversations: []domain.Conversation{
			{
				ID: "1", UserID: "2", Username: "photoartist", Avatar: avatarArtist,
				LastMessage: "Hey! Love your latest post 📸",
				UpdatedAt:   ago(time.Hour),
				Unread:      true,
				Messages: []domain.DirectMessage{
					{ID: "1", SenderID: "2", Text: "Hey! Love your latest post 📸", CreatedAt: ago(time.Hour)},
					{ID: "2", SenderID: "1", Text: "Thanks! Really appreciate it 😊", CreatedAt: ago(50 * time.Minute)},
				},
			},
			{
				ID: "2", UserID: "3", Username: "traveler", Avatar: avatarTraveler,
				LastMessage: "Where was this photo taken?",
				UpdatedAt:   ago(3 * time.Hour),
				Messages: []domain.DirectMessage{
					{ID: "1", SenderID: "3", Text: "Where was this photo taken?", CreatedAt: ago(3 * time.Hour)},
				},
			},
		},
	}
}

type Opts struct {
	fx.In

	Clock            clockwork.Clock
	Logger           logger.Logger
	UserRepo         user.Repository
	PostRepo         post.Repository
	StoryRepo        story.Repository
	ConversationRepo conversation.Repository
}

// Load stores the demo dataset. It is meant to run once on empty
// repositories.
func Load(ctx context.Context, opts Opts) error {
	return LoadDataset(ctx, opts, Demo(opts.Clock.Now()))
}

func LoadDataset(ctx context.Context, opts Opts, data Dataset) error {
	for _, u := range data.Users {
		if err := opts.UserRepo.Add(ctx, u); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.ID, err)
		}
	}
	// repositories prepend, so insert oldest first
	for _, p := range lo.Reverse(append([]domain.Post(nil), data.Posts...)) {
		if err := opts.PostRepo.Prepend(ctx, p); err != nil {
			return fmt.Errorf("failed to seed post %s: %w", p.ID, err)
		}
	}
	for _, s := range lo.Reverse(append([]domain.Story(nil), data.Stories...)) {
		if err := opts.StoryRepo.Prepend(ctx, s); err != nil {
			return fmt.Errorf("failed to seed story %s: %w", s.ID, err)
		}
	}
	for _, c := range data.Conversations {
		if err := opts.ConversationRepo.Add(ctx, c); err != nil {
			return fmt.Errorf("failed to seed conversation %s: %w", c.ID, err)
		}
	}

	opts.Logger.Info("Seed data loaded",
		"users", len(data.Users), "posts", len(data.Posts),
		"stories", len(data.Stories), "conversations", len(data.Conversations))
	return nil
}
