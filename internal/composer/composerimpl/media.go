package composerimpl

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/orgball2608/insta-feed/internal/composer"
	"github.com/orgball2608/insta-feed/internal/domain"
	apperrors "github.com/orgball2608/insta-feed/pkg/errors"
)

// classify sniffs every upload on the worker pool. The result keeps the
// order of uploads.
func (c *ComposerImpl) classify(ctx context.Context, uploads []composer.Upload) ([]domain.Media, error) {
	var wg sync.WaitGroup
	media := make([]domain.Media, len(uploads))
	errs := make([]error, len(uploads))

	for i, upload := range uploads {
		wg.Add(1)
		idx, item := i, upload

		err := c.pool.Submit(func() {
			defer wg.Done()
			select {
			case <-ctx.Done():
				errs[idx] = ctx.Err()
			default:
				media[idx], errs[idx] = detect(item)
			}
		})
		if err != nil {
			wg.Done()
			c.Logger.Error("Failed to submit upload to worker pool", "name", item.Name, "error", err)
			errs[idx] = fmt.Errorf("failed to classify %s: %w", item.Name, err)
		}
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return media, nil
}

func detect(upload composer.Upload) (domain.Media, error) {
	mtype := mimetype.Detect(upload.Data)

	var kind domain.MediaKind
	switch {
	case strings.HasPrefix(mtype.String(), "image/"):
		kind = domain.MediaImage
	case strings.HasPrefix(mtype.String(), "video/"):
		kind = domain.MediaVideo
	default:
		return domain.Media{}, apperrors.WrapWithCode(apperrors.ErrUnsupportedMedia, apperrors.CodeUnsupportedMedia,
			fmt.Sprintf("%s is %s", upload.Name, mtype.String()))
	}

	return domain.Media{Kind: kind, Source: "blob:" + uuid.NewString()}, nil
}
