// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package siteconfig

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Pages and routes every site must define.
var (
	RequiredPages  = []string{"home", "pricing", "dashboard"}
	RequiredRoutes = []string{"home", "pricing", "dashboard", "login"}
)

// Report is the outcome of Validate. Warnings never fail validation.
type Report struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// OK reports whether the configuration has no errors.
func (r Report) OK() bool {
	return len(r.Errors) == 0
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names so messages match the document.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the configuration for missing required fields, required
// pages and routes, pricing plans and duplicate ids, and collects warnings
// for recommended but optional settings.
func (c *Config) Validate() Report {
	r := Report{Errors: []string{}, Warnings: []string{}}

	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			r.Errors = append(r.Errors, err.Error())
			return r
		}
		for _, fe := range verrs {
			r.Errors = append(r.Errors, fieldMessage(fe))
		}
	}

	if c.Color("primary") == "" {
		r.Errors = append(r.Errors, "branding.colors.primary is required")
	}
	for _, page := range RequiredPages {
		if _, ok := c.Pages[page]; !ok {
			r.Errors = append(r.Errors, fmt.Sprintf("Missing required page: %s", page))
		}
	}
	for _, route := range RequiredRoutes {
		if c.Routes[route] == "" {
			r.Errors = append(r.Errors, fmt.Sprintf("Missing required route: %s", route))
		}
	}
	for _, id := range c.duplicateIDs() {
		r.Errors = append(r.Errors, fmt.Sprintf("Duplicate id: %q", id))
	}

	if c.Company.Twitter == "" && c.Company.GitHub == "" {
		r.Warnings = append(r.Warnings, "Social media links: consider adding twitter or github links")
	}
	if c.Content.Hero.SocialProof == nil {
		r.Warnings = append(r.Warnings, "Social proof: consider adding social proof to hero section")
	}
	return r
}

// duplicateIDs returns every id used more than once across features,
// testimonials, FAQs, plans, projects and products, in first-seen order.
func (c *Config) duplicateIDs() []string {
	var ids []string
	for _, f := range c.Content.Features {
		ids = append(ids, f.ID)
	}
	for _, t := range c.Content.Testimonials {
		ids = append(ids, t.ID)
	}
	for _, f := range c.Content.FAQ {
		ids = append(ids, f.ID)
	}
	for _, p := range c.Content.Pricing.Plans {
		ids = append(ids, p.ID)
	}
	for _, p := range c.Projects {
		ids = append(ids, p.ID)
	}
	for _, p := range c.Products {
		ids = append(ids, p.ID)
	}

	seen := make(map[string]int, len(ids))
	var dups []string
	for _, id := range ids {
		if id == "" {
			continue
		}
		seen[id]++
		if seen[id] == 2 {
			dups = append(dups, id)
		}
	}
	return dups
}

// fieldMessage turns a validator error into a message naming the JSON path
// of the offending field, e.g. "content.features[0].id is required".
func fieldMessage(fe validator.FieldError) string {
	path := fe.Namespace()
	if _, rest, ok := strings.Cut(path, "."); ok {
		path = rest
	}

	switch fe.Tag() {
	case "required":
		return path + " is required"
	case "email":
		return path + " must be a valid email address"
	case "url":
		return path + " must be a valid URL"
	case "hostname_rfc1123":
		return path + " must be a bare domain name"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s needs at least %s entries", path, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", path, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", path, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or greater", path, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", path, strings.ReplaceAll(fe.Param(), " ", ", "))
	}
	return fmt.Sprintf("%s failed the %q check", path, fe.Tag())
}
