package cv

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Extension of every exported document.
const Extension = ".pdf"

// ContentType of every exported document.
const ContentType = "application/pdf"

// Slug lowercases name, folds accented letters to ASCII and joins the
// remaining alphanumeric runs with hyphens.
func Slug(name string) string {
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	return b.String()
}

// Filename is the download name for name's CV, e.g. "nivando-soares-cv.pdf".
func Filename(name string) string {
	slug := Slug(name)
	if slug == "" {
		return "cv" + Extension
	}
	return slug + "-cv" + Extension
}
