package feedimpl

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/orgball2608/insta-feed/internal/domain"
	"github.com/orgball2608/insta-feed/internal/repositories/conversation"
	apperrors "github.com/orgball2608/insta-feed/pkg/errors"
)

func conversationNotFound(id string) error {
	return apperrors.WrapWithCode(apperrors.ErrNotFound, apperrors.CodeNotFound, "conversation "+id)
}

func (f *FeedImpl) Conversations(ctx context.Context) ([]*domain.Conversation, error) {
	list, err := f.ConversationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	return list, nil
}

// OpenConversation returns the thread and clears its unread marker.
func (f *FeedImpl) OpenConversation(ctx context.Context, id string) (*domain.Conversation, error) {
	c, err := f.ConversationRepo.MarkRead(ctx, id)
	if err != nil {
		if apperrors.Is(err, conversation.ErrNotFound) {
			return nil, conversationNotFound(id)
		}
		return nil, fmt.Errorf("failed to open conversation %s: %w", id, err)
	}
	return c, nil
}

func (f *FeedImpl) SendMessage(ctx context.Context, id, text string) (*domain.Conversation, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperrors.WrapWithCode(apperrors.ErrEmptyInput, apperrors.CodeEmptyInput, "message")
	}
	if err := f.allow("send_message"); err != nil {
		return nil, err
	}

	c, err := f.ConversationRepo.AppendMessage(ctx, id, domain.DirectMessage{
		ID:        uuid.NewString(),
		SenderID:  f.currentUserID,
		Text:      text,
		CreatedAt: f.Clock.Now(),
	})
	if err != nil {
		if apperrors.Is(err, conversation.ErrNotFound) {
			return nil, conversationNotFound(id)
		}
		return nil, fmt.Errorf("failed to send message to %s: %w", id, err)
	}
	return c, nil
}
