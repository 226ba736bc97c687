package services

import (
	"strings"
	"testing"

	"github.com/fr0stylo/socialsync/internal/observability"
)

func TestParseCaption(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		caption     string
		currency    string
		title       string
		price       int64
		code        string
		description string
		nilDesc     bool
	}{
		{
			name:        "full grammar",
			caption:     "Blue Dress @ 45000 UGX Great fabric",
			currency:    "KES",
			title:       "Blue Dress",
			price:       45000,
			code:        "UGX",
			description: "Great fabric",
		},
		{
			name:        "price without currency uses store default",
			caption:     "Red Hat @ 2000",
			currency:    "KES",
			title:       "Red Hat",
			price:       2000,
			code:        "KES",
			description: "Red Hat @ 2000",
		},
		{
			name:        "first price wins",
			caption:     "Bag @ 100 USD or @ 200 USD",
			currency:    "UGX",
			title:       "Bag",
			price:       100,
			code:        "USD",
			description: "or @ 200 USD",
		},
		{
			name:        "no grammar",
			caption:     "Just vibes today",
			currency:    "UGX",
			title:       "Just vibes today",
			code:        "UGX",
			description: "Just vibes today",
		},
		{
			name:     "empty caption",
			caption:  "   ",
			currency: "KES",
			title:    UntitledProduct,
			code:     "KES",
			nilDesc:  true,
		},
		{
			name:        "invalid default falls back",
			caption:     "Mug @ 5",
			currency:    "shillings",
			title:       "Mug",
			price:       5,
			code:        FallbackCurrency,
			description: "Mug @ 5",
		},
		{
			name:        "overflowing price",
			caption:     "Gold @ 99999999999999999999 USD",
			currency:    "UGX",
			title:       "Gold",
			price:       0,
			code:        "USD",
			description: "Gold @ 99999999999999999999 USD",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := ParseCaption(tc.caption, tc.currency)
			if got.Title != tc.title || got.PriceMinorUnits != tc.price || got.CurrencyCode != tc.code {
				t.Fatalf("unexpected listing: %+v", got)
			}
			if tc.nilDesc {
				if got.Description != nil {
					t.Fatalf("expected nil description, got %q", *got.Description)
				}
				return
			}
			if got.Description == nil || *got.Description != tc.description {
				t.Fatalf("expected description %q, got %v", tc.description, got.Description)
			}
		})
	}
}

func TestParseCaptionTruncatesLongTitles(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("ñ", 150)
	got := ParseCaption(long+" @ 10", "UGX")
	if n := len([]rune(got.Title)); n != maxTitleRunes {
		t.Fatalf("expected %d rune title, got %d", maxTitleRunes, n)
	}

	plain := ParseCaption(long, "UGX")
	if n := len([]rune(plain.Title)); n != maxTitleRunes {
		t.Fatalf("expected %d rune title without grammar, got %d", maxTitleRunes, n)
	}
	if plain.Description == nil || *plain.Description != long {
		t.Fatal("expected the full caption as description")
	}
}

func TestImporterFallsBackToConfiguredCurrency(t *testing.T) {
	t.Parallel()

	importer := NewPostImporter(nil, nil, observability.PipelineMetrics{}, nil, WithDefaultCurrency("TZS"))
	if importer.currency != "TZS" {
		t.Fatalf("expected TZS fallback, got %q", importer.currency)
	}
	if got := NewPostImporter(nil, nil, observability.PipelineMetrics{}, nil).currency; got != FallbackCurrency {
		t.Fatalf("expected %s by default, got %q", FallbackCurrency, got)
	}
}
