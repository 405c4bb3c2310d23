package commandimpl

import (
	"context"
	"fmt"
	"strings"

	"github.com/orgball2608/insta-feed/pkg/formatter"
)

func (c *CommandImpl) handleFeed(ctx context.Context) error {
	posts, err := c.Feed.Posts(ctx)
	if err != nil {
		return err
	}
	c.Presenter.RenderFeed(posts)
	return nil
}

func (c *CommandImpl) handleLike(ctx context.Context, args string) error {
	if args == "" {
		return errUsage("like <postID>")
	}

	p, err := c.Feed.ToggleLike(ctx, args)
	if err != nil {
		return err
	}

	verb := "Unliked"
	if p.IsLiked {
		verb = "Liked"
	}
	c.Presenter.Notify(fmt.Sprintf("%s post %s · %s", verb, p.ID, formatter.Likes(p.Likes)))
	return nil
}

func (c *CommandImpl) handleComment(ctx context.Context, args string) error {
	postID, text, _ := strings.Cut(args, " ")
	if postID == "" {
		return errUsage("comment <postID> <text>")
	}

	p, err := c.Feed.AddComment(ctx, postID, text)
	if err != nil {
		return err
	}
	c.Presenter.Notify(fmt.Sprintf("Comment added. View all %d comments", len(p.Comments)))
	return nil
}

func (c *CommandImpl) handleProfile(ctx context.Context) error {
	u, posts, err := c.Feed.Profile(ctx)
	if err != nil {
		return err
	}
	c.Presenter.RenderProfile(u, posts)
	return nil
}

func (c *CommandImpl) handleSearch(ctx context.Context, query string) error {
	result, err := c.Feed.Search(ctx, query)
	if err != nil {
		return err
	}
	c.Presenter.RenderSearch(query, result)
	return nil
}
