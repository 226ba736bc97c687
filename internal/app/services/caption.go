package services

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fr0stylo/socialsync/internal/app/domain"
)

const (
	maxTitleRunes = 100
	// UntitledProduct is the title given to posts without a caption.
	UntitledProduct = "Untitled product"
	// FallbackCurrency applies when neither the caption nor the store names a valid currency.
	FallbackCurrency = "UGX"
)

// captionPattern matches "<name> @ <integer> <CUR>? <rest>". The lazy name
// group makes the first "@ <number>" in the caption win.
var captionPattern = regexp.MustCompile(`(?s)^(.+?)\s*@\s*(\d+)(?:\s*([A-Z]{3})\b)?\s*(.*)$`)

// ParseCaption extracts a listing from free caption text. It never fails:
// captions that do not follow the grammar still produce a usable draft.
func ParseCaption(caption, defaultCurrency string) domain.ParsedListing {
	caption = strings.TrimSpace(caption)
	currency := resolveCurrency("", defaultCurrency)

	match := captionPattern.FindStringSubmatch(caption)
	if match == nil {
		listing := domain.ParsedListing{
			Title:        truncateRunes(caption, maxTitleRunes),
			CurrencyCode: currency,
		}
		if caption == "" {
			listing.Title = UntitledProduct
		} else {
			listing.Description = &caption
		}
		return listing
	}

	title := truncateRunes(strings.TrimSpace(match[1]), maxTitleRunes)
	if title == "" {
		title = UntitledProduct
	}

	description := strings.TrimSpace(match[4])
	if description == "" {
		description = caption
	}

	return domain.ParsedListing{
		Title:           title,
		PriceMinorUnits: parsePrice(match[2]),
		CurrencyCode:    resolveCurrency(match[3], defaultCurrency),
		Description:     &description,
	}
}

// parsePrice returns 0 for anything that does not fit a non-negative int64.
func parsePrice(raw string) int64 {
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value < 0 {
		return 0
	}
	return value
}

func resolveCurrency(matched, defaultCurrency string) string {
	if isCurrencyCode(matched) {
		return matched
	}
	defaultCurrency = strings.ToUpper(strings.TrimSpace(defaultCurrency))
	if isCurrencyCode(defaultCurrency) {
		return defaultCurrency
	}
	return FallbackCurrency
}

func isCurrencyCode(value string) bool {
	if len(value) != 3 {
		return false
	}
	for i := 0; i < len(value); i++ {
		if value[i] < 'A' || value[i] > 'Z' {
			return false
		}
	}
	return true
}

func truncateRunes(value string, limit int) string {
	if utf8.RuneCountInString(value) <= limit {
		return value
	}
	runes := []rune(value)
	return strings.TrimSpace(string(runes[:limit]))
}
