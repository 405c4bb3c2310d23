package command

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=command.go -destination=mocks/mock.go
type Client interface {
	// HandleCommand reads commands until the input ends or ctx is done.
	HandleCommand(ctx context.Context) error
}
