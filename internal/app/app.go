package app

import (
	"context"
	"errors"

	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/insta-feed/internal/command"
	"github.com/orgball2608/insta-feed/internal/command/commandimpl"
	"github.com/orgball2608/insta-feed/internal/composer"
	"github.com/orgball2608/insta-feed/internal/composer/composerimpl"
	"github.com/orgball2608/insta-feed/internal/feed"
	"github.com/orgball2608/insta-feed/internal/feed/feedimpl"
	"github.com/orgball2608/insta-feed/internal/player"
	"github.com/orgball2608/insta-feed/internal/player/playerimpl"
	"github.com/orgball2608/insta-feed/internal/presenter"
	"github.com/orgball2608/insta-feed/internal/presenter/consoleimpl"
	"github.com/orgball2608/insta-feed/internal/ratelimit"
	repositories "github.com/orgball2608/insta-feed/internal/repositories/fx"
	"github.com/orgball2608/insta-feed/internal/seed"
	"github.com/orgball2608/insta-feed/internal/ticker"
	"github.com/orgball2608/insta-feed/internal/ticker/gocronimpl"
	"github.com/orgball2608/insta-feed/pkg/config"
	"github.com/orgball2608/insta-feed/pkg/logger"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		clockwork.NewRealClock,
		newLimiter,
	),
	fx.Provide(
		fx.Annotate(
			gocronimpl.New,
			fx.As(new(ticker.Scheduler)),
		), fx.Annotate(
			consoleimpl.New,
			fx.As(new(presenter.Client)),
		), fx.Annotate(
			playerimpl.New,
			fx.As(new(player.Client)),
		), fx.Annotate(
			feedimpl.New,
			fx.As(new(feed.Client)),
		), fx.Annotate(
			composerimpl.New,
			fx.As(new(composer.Client)),
		),
		fx.Annotate(
			commandimpl.New,
			fx.As(new(command.Client)),
		),
	),
	repositories.Module,
	fx.Invoke(func(opts seed.Opts) error {
		return seed.Load(context.Background(), opts)
	}),
	fx.Invoke(run),
)

func newLimiter(clock clockwork.Clock, cfg *config.Config) ratelimit.Limiter {
	return ratelimit.NewInMemoryLimiter(clock, cfg.Feed.ActionRate, cfg.Feed.ActionPer, cfg.Feed.ActionBurst)
}

func run(lc fx.Lifecycle, shutdowner fx.Shutdowner, log logger.Logger,
	cmdClient command.Client, playerClient player.Client, presenterClient presenter.Client) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			presenterClient.Notify("Type help to see the list of available commands.")

			go func() {
				err := cmdClient.HandleCommand(ctx)
				if err != nil && !errors.Is(err, context.Canceled) {
					log.Error("Command error", "error", err)
				}
				if ctx.Err() == nil {
					// input ended, nothing else drives the app
					if err := shutdowner.Shutdown(); err != nil {
						log.Error("Failed to request shutdown", "error", err)
					}
				}
			}()

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			playerClient.Close()
			return nil
		},
	})
}
