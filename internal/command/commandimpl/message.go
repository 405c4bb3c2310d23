package commandimpl

import (
	"context"
	"strings"
)

func (c *CommandImpl) handleInbox(ctx context.Context) error {
	conversations, err := c.Feed.Conversations(ctx)
	if err != nil {
		return err
	}
	c.Presenter.RenderInbox(conversations)
	return nil
}

func (c *CommandImpl) handleChat(ctx context.Context, args string) error {
	if args == "" {
		return errUsage("chat <conversationID>")
	}

	conv, err := c.Feed.OpenConversation(ctx, args)
	if err != nil {
		return err
	}
	c.Presenter.RenderConversation(conv)
	return nil
}

func (c *CommandImpl) handleSend(ctx context.Context, args string) error {
	id, text, _ := strings.Cut(args, " ")
	if id == "" {
		return errUsage("send <conversationID> <text>")
	}

	conv, err := c.Feed.SendMessage(ctx, id, text)
	if err != nil {
		return err
	}
	c.Presenter.RenderConversation(conv)
	return nil
}
