package post

import (
	"go.uber.org/fx"
)

var Module = fx.Module("post_repository",
	fx.Provide(
		NewMemory,
		fx.Annotate(
			func(repo *Memory) Repository {
				return repo
			},
			fx.As(new(Repository)),
		),
	),
)
