// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Command validate-config checks a site configuration document and prints
// its errors and warnings. It exits with status 1 when the document has
// errors. Without --file it checks the embedded default (or the file named
// by SITE_CONFIG_PATH).
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"shipfree/internal/config"
	"shipfree/internal/siteconfig"
)

// errInvalid signals a document that loaded but failed validation.
var errInvalid = errors.New("configuration validation failed")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "validate-config: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("validate-config", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	file := fs.String("file", "", "site configuration file (default SITE_CONFIG_PATH or the embedded document)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	path := *file
	if path == "" {
		if err := config.LoadDotEnv(); err != nil {
			return err
		}
		path = os.Getenv("SITE_CONFIG_PATH")
	}

	name := path
	if name == "" {
		name = "embedded site-config.json"
	}
	fmt.Fprintf(stdout, "Validating %s\n\n", name)

	cfg, err := siteconfig.LoadOrDefault(path)
	if err != nil {
		return err
	}

	report := cfg.Validate()
	for _, msg := range report.Errors {
		fmt.Fprintf(stdout, "ERROR   %s\n", msg)
	}
	for _, msg := range report.Warnings {
		fmt.Fprintf(stdout, "WARNING %s\n", msg)
	}

	fmt.Fprintln(stdout, strings.Repeat("=", 50))
	fmt.Fprintf(stdout, "Errors: %d  Warnings: %d\n", len(report.Errors), len(report.Warnings))

	switch {
	case !report.OK():
		return errInvalid
	case len(report.Warnings) > 0:
		fmt.Fprintln(stdout, "Configuration is valid, with warnings.")
	default:
		fmt.Fprintln(stdout, "Configuration is valid.")
	}
	return nil
}
