// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package holiday

import (
	"strings"
	"time"
)

// DefaultBaseURL is used for generated links when Options.BaseURL is empty.
const DefaultBaseURL = "https://tudominio.com"

// Options carries the environment-dependent values the generators interpolate.
type Options struct {
	// BaseURL is the public origin of the landing page, without trailing slash.
	BaseURL string
	// Year is the calendar year referenced in copy. Zero means the current year.
	Year int
}

// Resolved returns o with every zero field replaced by its default.
func (o Options) Resolved() Options {
	o.BaseURL = strings.TrimRight(strings.TrimSpace(o.BaseURL), "/")
	if o.BaseURL == "" {
		o.BaseURL = DefaultBaseURL
	}
	if o.Year == 0 {
		o.Year = time.Now().Year()
	}
	return o
}
