package domain

// MediaKind is the provider's classification of a post or carousel child.
type MediaKind string

const (
	MediaKindImage    MediaKind = "image"
	MediaKindVideo    MediaKind = "video"
	MediaKindCarousel MediaKind = "carousel"
)

// SourcePost is one external post as returned by the provider. Items holds a
// single entry for image/video posts and the ordered children for carousels.
type SourcePost struct {
	ExternalID  string
	CaptionText string
	MediaKind   MediaKind
	Items       []SourceMediaItem
	Permalink   string
}

// SourceMediaItem is one media unit of a post.
type SourceMediaItem struct {
	ExternalChildID string
	Kind            MediaKind
	URL             string
	ThumbnailURL    string
}

// IsCarousel reports whether the post is a multi-item carousel.
func (p SourcePost) IsCarousel() bool {
	return p.MediaKind == MediaKindCarousel
}
