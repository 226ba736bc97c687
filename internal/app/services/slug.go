package services

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const maxSlugBaseLen = 60

// Transformers carry state, so each call builds its own chain.
func stripMarks() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// Slugify builds a URL slug from title plus a short random suffix.
func Slugify(title string) string {
	return slugBase(title) + "-" + slugSuffix()
}

func slugBase(title string) string {
	folded, _, err := transform.String(stripMarks(), title)
	if err != nil {
		folded = title
	}

	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
		default:
			pendingDash = true
		}
		if b.Len() >= maxSlugBaseLen {
			break
		}
	}

	base := strings.Trim(b.String(), "-")
	if base == "" {
		return "product"
	}
	return base
}

func slugSuffix() string {
	id := uuid.New()
	return strings.ReplaceAll(id.String(), "-", "")[:8]
}
