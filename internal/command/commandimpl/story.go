package commandimpl

import (
	"context"
	"strconv"
	"strings"

	apperrors "github.com/orgball2608/insta-feed/pkg/errors"
)

func (c *CommandImpl) handleStories(ctx context.Context) error {
	stories, err := c.Feed.Stories(ctx)
	if err != nil {
		return err
	}
	c.Presenter.RenderStories(stories)
	return nil
}

func (c *CommandImpl) handleOpen(ctx context.Context, args string) error {
	if args == "" {
		return errUsage("open <storyID>")
	}

	err := c.Player.Open(ctx, args)
	if apperrors.IsNotFound(err) {
		c.Logger.Debug("Ignoring open of unknown story", "story_id", args)
		return nil
	}
	return err
}

func (c *CommandImpl) handleSwipe(args string) error {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		return errUsage("swipe <startX> <endX>")
	}

	startX, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return errUsage("swipe <startX> <endX>")
	}
	endX, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return errUsage("swipe <startX> <endX>")
	}

	c.Player.HandleSwipe(startX, endX)
	return nil
}
