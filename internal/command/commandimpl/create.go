package commandimpl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/orgball2608/insta-feed/internal/composer"
)

func (c *CommandImpl) handleCreate(args string) error {
	var kind composer.Kind
	switch strings.ToLower(args) {
	case "post":
		kind = composer.KindPost
	case "story":
		kind = composer.KindStory
	default:
		return errUsage("create <post|story>")
	}

	c.Composer.Open(kind)
	c.Composer.Choose(kind)
	c.Presenter.Notify(c.Composer.Title())
	return nil
}

func (c *CommandImpl) handleUpload(ctx context.Context, args string) error {
	paths := strings.Fields(args)
	if len(paths) == 0 {
		return errUsage("upload <path...>")
	}
	if !c.Composer.State().Active {
		c.Presenter.Notify("Start with: create <post|story>")
		return nil
	}

	uploads := make([]composer.Upload, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			c.Logger.Warn("Failed to read upload", "path", path, "error", err)
			c.Presenter.Notify(fmt.Sprintf("Cannot read %s.", path))
			return nil
		}
		uploads = append(uploads, composer.Upload{Name: filepath.Base(path), Data: data})
	}

	if err := c.Composer.SelectFiles(ctx, uploads); err != nil {
		return err
	}

	state := c.Composer.State()
	c.Presenter.Notify(fmt.Sprintf("%s (%d selected)", c.Composer.Title(), len(state.Media)))
	return nil
}

func (c *CommandImpl) handleShare(ctx context.Context, caption string) error {
	kind := c.Composer.State().Kind

	if err := c.Composer.Share(ctx, caption); err != nil {
		return err
	}

	if kind == composer.KindStory {
		return c.handleStories(ctx)
	}
	return c.handleFeed(ctx)
}
