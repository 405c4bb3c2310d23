package domain

type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// Media is one image or video attached to a post or story. It is never
// modified after it has been attached.
type Media struct {
	Kind   MediaKind `validate:"oneof=image video"`
	Source string    `validate:"required"` // locator of an already available local asset
}
