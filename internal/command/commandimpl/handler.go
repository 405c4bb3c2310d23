package commandimpl

import (
	"bufio"
	"context"
	"errors"
	"runtime/debug"
	"strings"

	apperrors "github.com/orgball2608/insta-feed/pkg/errors"
)

const helpMessage = `Available commands:

FEED:
feed - Show the home feed.
like <postID> - Like or unlike a post.
comment <postID> <text> - Comment on a post.
profile - Show your profile.
search <query> - Search users and posts.

STORIES:
stories - List stories.
open <storyID> - Watch a story.
next, prev, close - Navigate the open story.
tick - Advance the open story by one tick.
key <Escape|ArrowLeft|ArrowRight> - Press a key in the story viewer.
swipe <startX> <endX> - Swipe across the story viewer.

MESSAGES:
inbox - List conversations.
chat <conversationID> - Open a conversation.
send <conversationID> <text> - Send a message.

CREATE:
create <post|story> - Start creating a post or a story.
upload <path...> - Pick photos and videos.
share [caption] - Share what you picked.
cancel - Discard the draft.

Type help at any time to see this guide.`

func (c *CommandImpl) HandleCommand(ctx context.Context) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.In)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	c.Logger.Info("Command handler started, reading commands.")

	for {
		select {
		case <-ctx.Done():
			c.Logger.Info("Command handler shutting down.")
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				var err error
				select {
				case err = <-scanErr:
				default:
				}
				if err != nil {
					return err
				}
				c.Logger.Info("Command input closed.")
				return nil
			}
			c.handleLine(ctx, line)
		}
	}
}

func (c *CommandImpl) handleLine(ctx context.Context, line string) {
	defer func() {
		if r := recover(); r != nil {
			c.Logger.Error("Panic recovered while processing a command", "panic", r, "stack", string(debug.Stack()))
		}
	}()

	name, args, _ := strings.Cut(strings.TrimSpace(line), " ")
	if name == "" {
		return
	}
	args = strings.TrimSpace(args)

	c.Logger.Debug("Command received", "command", name, "args", args)

	if err := c.processCommand(ctx, strings.ToLower(name), args); err != nil {
		c.reportError(name, err)
	}
}

func (c *CommandImpl) processCommand(ctx context.Context, name, args string) error {
	switch name {
	case "help":
		c.Presenter.Notify(helpMessage)
		return nil
	case "feed":
		return c.handleFeed(ctx)
	case "like":
		return c.handleLike(ctx, args)
	case "comment":
		return c.handleComment(ctx, args)
	case "profile":
		return c.handleProfile(ctx)
	case "search":
		return c.handleSearch(ctx, args)
	case "stories":
		return c.handleStories(ctx)
	case "open":
		return c.handleOpen(ctx, args)
	case "next":
		c.Player.Next()
		return nil
	case "prev", "previous":
		c.Player.Previous()
		return nil
	case "close":
		c.Player.Close()
		return nil
	case "tick":
		c.Player.Tick()
		return nil
	case "key":
		c.Player.HandleKey(args)
		return nil
	case "swipe":
		return c.handleSwipe(args)
	case "inbox":
		return c.handleInbox(ctx)
	case "chat":
		return c.handleChat(ctx, args)
	case "send":
		return c.handleSend(ctx, args)
	case "create":
		return c.handleCreate(args)
	case "upload":
		return c.handleUpload(ctx, args)
	case "share":
		return c.handleShare(ctx, args)
	case "cancel":
		c.Composer.Close()
		c.Presenter.Notify("Draft discarded.")
		return nil
	default:
		c.Presenter.Notify("Unknown command. Type help to see the list of available commands.")
		return nil
	}
}

// errUsage carries a usage hint back to the user.
type errUsage string

func (e errUsage) Error() string { return string(e) }

func (c *CommandImpl) reportError(name string, err error) {
	var usage errUsage
	switch {
	case errors.As(err, &usage):
		c.Presenter.Notify("Usage: " + string(usage))
	case apperrors.IsNotFound(err):
		c.Presenter.Notify(apperrors.GetMessage(err) + " not found.")
	case apperrors.IsEmptyInput(err):
		c.Presenter.Notify("Please enter some text.")
	case apperrors.IsRateLimited(err):
		c.Presenter.Notify("You're doing that too fast. Try again in a moment.")
	case apperrors.Is(err, apperrors.ErrUnsupportedMedia):
		c.Presenter.Notify("Only photos and videos can be shared: " + apperrors.GetMessage(err))
	case apperrors.Is(err, apperrors.ErrNothingSelected):
		c.Presenter.Notify("Select photos or videos first.")
	case apperrors.Is(err, apperrors.ErrInvalidInput):
		c.Presenter.Notify("Invalid input: " + apperrors.GetMessage(err))
	default:
		c.Logger.Error("Error processing command", "command", name, "error", err)
		c.Presenter.Notify("Something went wrong. Please try again.")
	}
}
