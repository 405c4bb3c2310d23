package commandimpl

import (
	"io"
	"os"

	"github.com/orgball2608/insta-feed/internal/command"
	"github.com/orgball2608/insta-feed/internal/composer"
	"github.com/orgball2608/insta-feed/internal/feed"
	"github.com/orgball2608/insta-feed/internal/player"
	"github.com/orgball2608/insta-feed/internal/presenter"
	"github.com/orgball2608/insta-feed/pkg/config"
	"github.com/orgball2608/insta-feed/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Player    player.Client
	Feed      feed.Client
	Composer  composer.Client
	Presenter presenter.Client
	Logger    logger.Logger
	Config    *config.Config
	Input     io.Reader `name:"command_input" optional:"true"`
}

type CommandImpl struct {
	Player    player.Client
	Feed      feed.Client
	Composer  composer.Client
	Presenter presenter.Client
	Logger    logger.Logger
	Config    *config.Config
	In        io.Reader
}

func New(opts Opts) *CommandImpl {
	in := opts.Input
	if in == nil {
		in = os.Stdin
	}

	return &CommandImpl{
		Player:    opts.Player,
		Feed:      opts.Feed,
		Composer:  opts.Composer,
		Presenter: opts.Presenter,
		Logger:    opts.Logger.WithComponent("Command"),
		Config:    opts.Config,
		In:        in,
	}
}

var _ command.Client = (*CommandImpl)(nil)
