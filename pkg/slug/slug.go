// Package slug derives URL-safe, unique identifiers from human-entered
// titles. Generation is a pure string computation; uniqueness is resolved
// through a caller-supplied existence probe so the package stays decoupled
// from any storage layer.
package slug

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

// DefaultSymbolMapping is the built-in replacement table applied before
// generic slug normalization. It folds punctuation into hyphens and maps
// the Azerbaijani alphabet to ASCII equivalents.
var DefaultSymbolMapping = [][]string{
	{" ", "-"},
	{"/", "-"},
	{".", "-"},
	{"(", "-"},
	{")", "-"},
	{",", "-"},
	{"!", ""},
	{"?", ""},
	{"'", "-"},
	{"\"", "-"},
	{"ə", "e"},
	{"ı", "i"},
	{"ö", "o"},
	{"ğ", "g"},
	{"ü", "u"},
	{"ş", "s"},
	{"ç", "c"},
	{"%", ""},
	{"$", ""},
	{"=", ""},
	{":", ""},
}

// Config controls how a slug is derived from its source text.
type Config struct {
	// SourceField names the attribute supplying the raw text.
	SourceField string
	// Overwrite regenerates the slug even when one is already present.
	Overwrite bool
	// SymbolMapping is an ordered list of [match, replacement] pairs
	// applied before generic normalization.
	SymbolMapping [][]string
	// AllowManual disables derivation entirely, the caller-supplied
	// value is used verbatim.
	AllowManual bool
	// AllowUnicode keeps Unicode letters instead of transliterating
	// to ASCII.
	AllowUnicode bool
}

// Validate checks the configuration. It returns advisory warnings and a
// fatal error for malformed symbol mappings. It should run once at
// startup, before any record is processed.
func (c Config) Validate() ([]string, error) {
	var warnings []string

	if c.AllowManual && (c.SourceField != "" || c.Overwrite || len(c.SymbolMapping) > 0) {
		warnings = append(warnings, "allow_manual is set, so source_field, overwrite, and symbol_mapping are ineffective")
	}

	for i, pair := range c.SymbolMapping {
		if len(pair) != 2 {
			return warnings, fmt.Errorf("symbol_mapping entry %d must contain exactly two elements", i)
		}
	}

	return warnings, nil
}

// ExistsFunc reports whether a candidate slug is already taken by another
// record in the same table. Implementations must exclude the record being
// saved so an unchanged title does not collide with itself.
type ExistsFunc func(candidate string) (bool, error)

// Generate derives a slug for the given source text.
//
// current is the slug value already present on the record, empty for new
// records. With AllowManual set, or when a slug is present and Overwrite
// is false, current is returned untouched. Otherwise the source text is
// slugified and probed against existsFn, appending -1, -2, ... until a
// free value is found. A source that slugifies to nothing falls back to a
// slugified random UUID, so the result is never empty.
func Generate(cfg Config, current, source string, existsFn ExistsFunc) (string, error) {
	if cfg.AllowManual {
		return current, nil
	}

	if current != "" && !cfg.Overwrite {
		return current, nil
	}

	base := Slugify(source, cfg.SymbolMapping, cfg.AllowUnicode)
	if base == "" {
		base = Slugify(uuid.NewString(), cfg.SymbolMapping, cfg.AllowUnicode)
	}

	if existsFn == nil {
		return base, nil
	}

	candidate := base
	for counter := 1; ; counter++ {
		taken, err := existsFn(candidate)
		if err != nil {
			return "", fmt.Errorf("probe slug %q: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}

		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
}

// Slugify lower-cases and trims the value, applies the symbol mapping in
// list order, normalizes the remaining characters, and collapses the
// result to lower-case alphanumerics and hyphens.
func Slugify(value string, symbolMapping [][]string, allowUnicode bool) string {
	value = strings.ToLower(strings.TrimSpace(value))

	for _, pair := range symbolMapping {
		if len(pair) != 2 {
			continue
		}

		value = strings.ReplaceAll(value, pair[0], pair[1])
	}

	if allowUnicode {
		value = norm.NFC.String(value)
	} else {
		value = dropNonASCII(norm.NFD.String(value))
	}

	return collapse(value, allowUnicode)
}

func dropNonASCII(value string) string {
	var b strings.Builder
	b.Grow(len(value))

	for _, r := range value {
		if r <= unicode.MaxASCII {
			b.WriteRune(r)
		}
	}

	return b.String()
}

func collapse(value string, allowUnicode bool) string {
	var b strings.Builder
	b.Grow(len(value))

	lastHyphen := false
	for _, r := range value {
		switch {
		case r == '-':
			if !lastHyphen && b.Len() > 0 {
				b.WriteRune(r)
				lastHyphen = true
			}
		case isSlugRune(r, allowUnicode):
			b.WriteRune(r)
			lastHyphen = false
		}
	}

	return strings.TrimRight(b.String(), "-")
}

func isSlugRune(r rune, allowUnicode bool) bool {
	if allowUnicode {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}

	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
