// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"shipfree/internal/holiday"
	"shipfree/internal/models"
)

// Used when neither the brief file nor the flags name a brand or products.
const defaultBrand = "Demo Brand"

var defaultProducts = []models.ProductID{models.ProductPlantillas, models.ProductAdviento}

// briefFlags holds the brief fields settable from the command line. set
// records which flags were given explicitly.
type briefFlags struct {
	brand, audience, tone, goal string
	currency, locale            string
	sales, email                string
	channels, products          string
	constraints, legal          string

	set map[string]bool
}

func (b *briefFlags) register(fs *flag.FlagSet) {
	b.set = make(map[string]bool)
	fs.StringVar(&b.brand, "brand", "", "brand name (default \""+defaultBrand+"\")")
	fs.StringVar(&b.audience, "audience", "", "target audience")
	fs.StringVar(&b.tone, "tone", "", "tone of voice")
	fs.StringVar(&b.goal, "goal", "", "primary goal, e.g. \"pre-ventas + 100 leads\"")
	fs.StringVar(&b.currency, "currency", "", "currency: MXN, USD or EUR")
	fs.StringVar(&b.locale, "locale", "", "locale: es-MX, es-ES or en-US")
	fs.StringVar(&b.sales, "sales", "", "sales stack")
	fs.StringVar(&b.email, "email", "", "email stack")
	fs.StringVar(&b.channels, "channels", "", "comma separated distribution channels")
	fs.StringVar(&b.products, "products", "", "comma separated product ids (default plantillas,adviento)")
	fs.StringVar(&b.constraints, "constraints", "", "brand constraints")
	fs.StringVar(&b.legal, "legal", "", "legal notes")
}

// apply overwrites the fields of in whose flag was given.
func (b *briefFlags) apply(in *models.GeneratorInput) {
	strs := []struct {
		name string
		val  string
		dst  *string
	}{
		{"brand", b.brand, &in.BrandName},
		{"audience", b.audience, &in.TargetAudience},
		{"tone", b.tone, &in.ToneVoice},
		{"goal", b.goal, &in.PrimaryGoal},
		{"sales", b.sales, &in.SalesStack},
		{"email", b.email, &in.EmailStack},
		{"constraints", b.constraints, &in.BrandConstraints},
		{"legal", b.legal, &in.LegalNotes},
	}
	for _, s := range strs {
		if b.set[s.name] {
			*s.dst = s.val
		}
	}
	if b.set["currency"] {
		in.Currency = models.Currency(strings.ToUpper(strings.TrimSpace(b.currency)))
	}
	if b.set["locale"] {
		in.Locale = models.Locale(strings.TrimSpace(b.locale))
	}
	if b.set["channels"] {
		in.Channels = splitList(b.channels)
	}
	if b.set["products"] {
		in.ProductsToInclude = nil
		for _, id := range splitList(b.products) {
			in.ProductsToInclude = append(in.ProductsToInclude, models.ProductID(id))
		}
	}
}

// buildBrief assembles the brief from the optional brief file and the
// explicit flags. Without a file it starts from the quick-start brief, so
// the output matches the server's quick generation for the same brand.
func buildBrief(file string, flags briefFlags) (models.GeneratorInput, error) {
	var in models.GeneratorInput
	if file == "" {
		in = holiday.QuickBrief("", nil)
	} else {
		var err error
		if in, err = readBrief(file); err != nil {
			return in, err
		}
	}

	flags.apply(&in)

	if strings.TrimSpace(in.BrandName) == "" {
		in.BrandName = defaultBrand
	}
	if len(in.ProductsToInclude) == 0 {
		in.ProductsToInclude = append([]models.ProductID(nil), defaultProducts...)
	}
	return in, nil
}

// readBrief decodes a brief file. JSON documents are valid YAML, so a single
// decoder serves both formats. Unknown keys are rejected.
func readBrief(path string) (models.GeneratorInput, error) {
	var in models.GeneratorInput
	data, err := os.ReadFile(path)
	if err != nil {
		return in, fmt.Errorf("read brief: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&in); err != nil && !errors.Is(err, io.EOF) {
		return in, fmt.Errorf("parse brief %s: %w", path, err)
	}
	return in, nil
}

// splitList splits a comma separated flag value, dropping empty entries.
// The result is non-nil so an explicit empty flag stays an explicit empty list.
func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func joinIDs(ids []models.ProductID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, ", ")
}
