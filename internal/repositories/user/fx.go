package user

import (
	"go.uber.org/fx"
)

var Module = fx.Module("user_repository",
	fx.Provide(
		fx.Annotate(
			NewMemory,
			fx.As(new(Repository)),
		),
	),
)
