package services

import (
	"strings"

	"github.com/fr0stylo/socialsync/internal/app/domain"
)

const (
	contentTypeImage = "image/jpeg"
	contentTypeVideo = "video/mp4"
)

// ResolveMedia turns a post into the ordered media entries to persist.
// Items without any usable URL are dropped; the remaining order is preserved.
func ResolveMedia(post domain.SourcePost) []domain.ResolvedMedia {
	resolved := make([]domain.ResolvedMedia, 0, len(post.Items))
	for _, item := range post.Items {
		entry, ok := resolveItem(item, post.IsCarousel())
		if !ok {
			continue
		}
		resolved = append(resolved, entry)
	}
	return resolved
}

func resolveItem(item domain.SourceMediaItem, carousel bool) (domain.ResolvedMedia, bool) {
	kind := item.Kind
	if kind == "" || kind == domain.MediaKindCarousel {
		kind = domain.MediaKindImage
	}

	url := strings.TrimSpace(item.URL)
	contentType := contentTypeImage
	if kind == domain.MediaKindVideo {
		contentType = contentTypeVideo
	}
	if url == "" {
		// A thumbnail is only ever a still frame.
		url = strings.TrimSpace(item.ThumbnailURL)
		contentType = contentTypeImage
	}
	if url == "" {
		return domain.ResolvedMedia{}, false
	}

	childID := ""
	if carousel {
		childID = strings.TrimSpace(item.ExternalChildID)
	}
	return domain.ResolvedMedia{
		URL:           url,
		ContentType:   contentType,
		SourceChildID: childID,
		Kind:          kind,
	}, true
}
