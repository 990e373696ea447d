// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug derives URL and file-name safe slugs from brand names.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Generate creates a lowercase ASCII slug: accents are folded ("Café Ñandú"
// becomes "cafe-nandu"), every run of other characters becomes a single
// hyphen, and leading or trailing hyphens are dropped.
// Example: "Xilo Labs, S.A. de C.V." → "xilo-labs-s-a-de-c-v"
func Generate(s string) string {
	folded, _, err := transform.String(fold(), s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))
	pendingHyphen := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}

// GenerateMax is Generate limited to max bytes, cut at a hyphen when one
// exists so words stay whole.
func GenerateMax(s string, max int) string {
	out := Generate(s)
	if max <= 0 || len(out) <= max {
		return out
	}
	out = out[:max]
	if i := strings.LastIndexByte(out, '-'); i > 0 {
		out = out[:i]
	}
	return strings.TrimRight(out, "-")
}

// fold returns a fresh transformer; transform.Chain values are stateful and
// must not be shared between goroutines.
func fold() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}
