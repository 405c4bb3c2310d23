package story

import (
	"go.uber.org/fx"
)

var Module = fx.Module("story_repository",
	fx.Provide(
		fx.Annotate(
			NewMemory,
			fx.As(new(Repository)),
		),
	),
)
