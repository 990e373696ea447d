// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"unicode/utf8"

	"shipfree/internal/models"
)

// Limits on brief fields accepted over HTTP.
const (
	maxBriefBytes     = 64 << 10
	maxBrandLen       = 120
	maxShortTextLen   = 300
	maxStackLen       = 100
	maxLongTextLen    = 2_000
	maxChannels       = 10
	maxChannelNameLen = 50
	maxProducts       = 20
)

// validateBrief checks the free-text fields of a brief and returns the
// first problem found, or "" when the brief is within limits. Required
// fields and enumerations are checked later by the normalizer.
func validateBrief(in models.GeneratorInput) string {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"brand_name", in.BrandName, maxBrandLen},
		{"target_audience", in.TargetAudience, maxShortTextLen},
		{"tone_voice", in.ToneVoice, maxShortTextLen},
		{"primary_goal", in.PrimaryGoal, maxShortTextLen},
		{"sales_stack", in.SalesStack, maxStackLen},
		{"email_stack", in.EmailStack, maxStackLen},
		{"brand_constraints", in.BrandConstraints, maxLongTextLen},
		{"legal_notes", in.LegalNotes, maxLongTextLen},
	}
	for _, f := range fields {
		if utf8.RuneCountInString(f.value) > f.max {
			return fmt.Sprintf("%s es demasiado largo (máx. %d caracteres).", f.name, f.max)
		}
	}

	if len(in.Channels) > maxChannels {
		return fmt.Sprintf("Demasiados canales (máx. %d).", maxChannels)
	}
	for _, c := range in.Channels {
		if utf8.RuneCountInString(c) > maxChannelNameLen {
			return fmt.Sprintf("Nombre de canal demasiado largo (máx. %d caracteres).", maxChannelNameLen)
		}
	}
	if len(in.ProductsToInclude) > maxProducts {
		return fmt.Sprintf("Demasiados productos (máx. %d).", maxProducts)
	}
	return ""
}
