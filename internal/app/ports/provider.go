package ports

import (
	"context"

	"github.com/fr0stylo/socialsync/internal/app/domain"
)

// MediaProvider reads posts from the social provider's media API.
type MediaProvider interface {
	// ListMedia returns at most limit recent posts of the account.
	ListMedia(ctx context.Context, account domain.AccountContext, limit int) ([]domain.SourcePost, error)
	// GetMedia returns one post with its carousel children.
	GetMedia(ctx context.Context, account domain.AccountContext, mediaID string) (domain.SourcePost, error)
}
