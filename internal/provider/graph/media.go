package graph

import (
	"strings"

	"github.com/fr0stylo/socialsync/internal/app/domain"
)

// Every field is optional on the wire; missing values decode to zero values.

type mediaPage struct {
	Data   []mediaItem `json:"data"`
	Paging struct {
		Next string `json:"next"`
	} `json:"paging"`
}

type mediaItem struct {
	ID           string     `json:"id"`
	Caption      string     `json:"caption"`
	MediaType    string     `json:"media_type"`
	MediaURL     string     `json:"media_url"`
	ThumbnailURL string     `json:"thumbnail_url"`
	Permalink    string     `json:"permalink"`
	Children     *mediaEdge `json:"children"`
}

type mediaEdge struct {
	Data []childItem `json:"data"`
}

type childItem struct {
	ID           string `json:"id"`
	MediaType    string `json:"media_type"`
	MediaURL     string `json:"media_url"`
	ThumbnailURL string `json:"thumbnail_url"`
}

func mediaKind(raw string) domain.MediaKind {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "VIDEO", "REELS":
		return domain.MediaKindVideo
	case "CAROUSEL_ALBUM":
		return domain.MediaKindCarousel
	default:
		return domain.MediaKindImage
	}
}

func (m mediaItem) toSourcePost() (domain.SourcePost, bool) {
	id := strings.TrimSpace(m.ID)
	if id == "" {
		return domain.SourcePost{}, false
	}

	post := domain.SourcePost{
		ExternalID:  id,
		CaptionText: m.Caption,
		MediaKind:   mediaKind(m.MediaType),
		Permalink:   m.Permalink,
	}

	if post.MediaKind == domain.MediaKindCarousel && m.Children != nil && len(m.Children.Data) > 0 {
		for _, child := range m.Children.Data {
			post.Items = append(post.Items, domain.SourceMediaItem{
				ExternalChildID: strings.TrimSpace(child.ID),
				Kind:            mediaKind(child.MediaType),
				URL:             child.MediaURL,
				ThumbnailURL:    child.ThumbnailURL,
			})
		}
		return post, true
	}

	if post.MediaKind == domain.MediaKindCarousel {
		// Album without expanded children: import the cover as a single image.
		post.MediaKind = domain.MediaKindImage
	}
	post.Items = []domain.SourceMediaItem{{
		ExternalChildID: id,
		Kind:            post.MediaKind,
		URL:             m.MediaURL,
		ThumbnailURL:    m.ThumbnailURL,
	}}
	return post, true
}
