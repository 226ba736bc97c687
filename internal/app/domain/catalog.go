package domain

import "time"

// SourceSocial is the product source recorded for imported posts. Together with
// the store id and external id it forms the idempotency key.
const SourceSocial = "social"

// ProductStatus is the catalog lifecycle state of a product.
type ProductStatus string

const ProductStatusDraft ProductStatus = "draft"

// ParsedListing is the commerce data extracted from a caption.
type ParsedListing struct {
	Title           string
	PriceMinorUnits int64
	CurrencyCode    string
	// Description is nil when the caption carried no text at all.
	Description *string
}

// ResolvedMedia is one media URL ready to be persisted.
type ResolvedMedia struct {
	URL           string
	ContentType   string
	SourceChildID string
	Kind          MediaKind
}

// Product is a catalog entry created from one external post.
type Product struct {
	ID              string
	TenantID        string
	StoreID         string
	Source          string
	ExternalID      string
	Title           string
	Slug            string
	Description     *string
	PriceMinorUnits int64
	CurrencyCode    string
	Status          ProductStatus
	Permalink       string
	Variants        []VariantEntry
	Media           []ProductMediaLink
	CreatedAt       time.Time
}

// MediaObject is one stored media reference owned by a product.
type MediaObject struct {
	ID            string
	BlobURL       string
	ContentType   string
	SourceChildID string
}

// ProductMediaLink attaches a media object to a product.
type ProductMediaLink struct {
	MediaObject MediaObject
	IsFeatured  bool
	SortOrder   int
}

// VariantEntry is one carousel option denormalized onto the product.
type VariantEntry struct {
	Label         string    `json:"label"`
	SourceChildID string    `json:"sourceChildId"`
	MediaObjectID string    `json:"mediaObjectId"`
	MediaKind     MediaKind `json:"mediaKind"`
}
