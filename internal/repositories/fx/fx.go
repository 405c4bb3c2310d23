package fx

import (
	"github.com/orgball2608/insta-feed/internal/repositories/conversation"
	"github.com/orgball2608/insta-feed/internal/repositories/post"
	"github.com/orgball2608/insta-feed/internal/repositories/story"
	"github.com/orgball2608/insta-feed/internal/repositories/user"
	"go.uber.org/fx"
)

var Module = fx.Options(
	story.Module,
	post.Module,
	user.Module,
	conversation.Module,
)
