package conversation

import (
	"go.uber.org/fx"
)

var Module = fx.Module("conversation_repository",
	fx.Provide(
		fx.Annotate(
			NewMemory,
			fx.As(new(Repository)),
		),
	),
)
