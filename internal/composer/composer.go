package composer

import (
	"context"

	"github.com/orgball2608/insta-feed/internal/domain"
)

type Step int

const (
	StepSelect Step = iota
	StepUpload
	StepDetails
)

func (s Step) String() string {
	switch s {
	case StepUpload:
		return "upload"
	case StepDetails:
		return "details"
	default:
		return "select"
	}
}

type Kind string

const (
	KindPost  Kind = "post"
	KindStory Kind = "story"
)

// Upload is one file picked by the user. Data is sniffed to decide whether
// it is an image or a video; the name is only used in messages.
type Upload struct {
	Name string
	Data []byte
}

type State struct {
	Active bool
	Kind   Kind
	Step   Step
	Media  []domain.Media
}

//go:generate go run go.uber.org/mock/mockgen -source=composer.go -destination=mocks/mock.go

// Client drives the create flow: select a kind, upload files, add details
// and share.
type Client interface {
	Open(kind Kind)
	Choose(kind Kind)
	// SelectFiles classifies the uploads and moves to the details step. An
	// empty selection does nothing; a file that is neither image nor video
	// rejects the whole selection.
	SelectFiles(ctx context.Context, uploads []Upload) error
	Back()
	Title() string
	Share(ctx context.Context, caption string) error
	Close()
	State() State
}
