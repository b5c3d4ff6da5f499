package services

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// letterFolds spells out Latin letters that have no canonical
// decomposition, so NFKD alone would drop them.
var letterFolds = strings.NewReplacer(
	"Æ", "AE", "æ", "ae",
	"Œ", "OE", "œ", "oe",
	"Ø", "O", "ø", "o",
	"Đ", "D", "đ", "d",
	"Ð", "D", "ð", "d",
	"Ł", "L", "ł", "l",
	"Þ", "TH", "þ", "th",
	"ẞ", "SS", "ß", "ss",
	"Ħ", "H", "ħ", "h",
	"ı", "i",
)

// Slugify derives a URL-safe slug from a product name.
// Accented letters fold to their base letter; every run of other
// characters becomes a single hyphen.
func Slugify(name string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	folded, _, err := transform.String(t, letterFolds.Replace(name))
	if err != nil {
		folded = letterFolds.Replace(name)
	}

	var b strings.Builder
	b.Grow(len(folded))
	pendingDash := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return b.String()
}
