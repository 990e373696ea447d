// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Command holiday-mvp generates the holiday MVP artifacts for a brief and
// writes them to disk, optionally uploading them to S3-compatible storage.
//
// Usage:
//
//	holiday-mvp --brand "Mi Marca" --products plantillas,adviento
//	holiday-mvp --brief brief.yaml --out output --html --upload
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/natefinch/atomic"

	"shipfree/internal/config"
	"shipfree/internal/holiday"
	"shipfree/internal/markdown"
	"shipfree/internal/slug"
	"shipfree/internal/storage"
)

// maxSlugLen bounds the artifact directory name.
const maxSlugLen = 60

// fallbackSlug names the artifact directory of brands whose name has no
// ASCII letters or digits.
const fallbackSlug = "brand"

// uploadPrefix is the object key prefix of uploaded runs.
const uploadPrefix = "holiday-mvp"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "holiday-mvp: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	brief  briefFlags
	file   string
	out    string
	html   bool
	upload bool
	base   string
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("holiday-mvp", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &options{}
	opts.brief.register(fs)
	fs.StringVar(&opts.file, "brief", "", "JSON or YAML brief file; flags override its fields")
	fs.StringVar(&opts.out, "out", "output", "output directory")
	fs.BoolVar(&opts.html, "html", false, "also write HTML renderings of the Markdown artifacts")
	fs.BoolVar(&opts.upload, "upload", false, "upload the artifacts to S3 (S3_* environment variables)")
	fs.StringVar(&opts.base, "base-url", "", "public origin used in generated links (default SITE_BASE_URL)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	fs.Visit(func(f *flag.Flag) { opts.brief.set[f.Name] = true })
	return opts, nil
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	opts, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}

	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	in, err := buildBrief(opts.file, opts.brief)
	if err != nil {
		return err
	}

	baseURL := opts.base
	if baseURL == "" {
		baseURL = cfg.SiteBaseURL
	}

	fmt.Fprintln(stdout, "Holiday MVP Generator")
	fmt.Fprintf(stdout, "  Marca: %s\n", in.BrandName)
	fmt.Fprintf(stdout, "  Productos: %s\n", joinIDs(in.ProductsToInclude))
	if in.PrimaryGoal != "" {
		fmt.Fprintf(stdout, "  Objetivo: %s\n", in.PrimaryGoal)
	}

	out, err := holiday.Generate(in, holiday.Options{BaseURL: baseURL})
	if err != nil {
		var verr *holiday.ValidationError
		if errors.As(err, &verr) {
			return fmt.Errorf("invalid brief: %s", strings.Join(verr.Errors, "; "))
		}
		return err
	}
	artifacts, err := holiday.Export(out)
	if err != nil {
		return err
	}

	files, err := renderFiles(artifacts, opts.html)
	if err != nil {
		return err
	}

	dir := filepath.Join(opts.out, brandSlug(in.BrandName))
	if err := writeFiles(dir, files); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "\nArchivos generados en %s:\n", dir)
	for _, f := range files {
		fmt.Fprintf(stdout, "  %s\n", f.Name)
	}

	if opts.upload {
		if err := upload(ctx, cfg, in.BrandName, files, stdout); err != nil {
			return err
		}
	}

	fmt.Fprintln(stdout, "\nResumen:")
	fmt.Fprintf(stdout, "  Productos: %d\n", len(out.LandingSpec.Products))
	fmt.Fprintf(stdout, "  Planes de contenido: %d\n", len(out.ContentPlan))
	fmt.Fprintf(stdout, "  Acciones de distribución: %d\n", len(out.ExecutionPlan.DistributionPlan))
	fmt.Fprintf(stdout, "  Suposiciones: %d\n", len(out.Assumptions))
	return nil
}

// renderFiles lists the artifacts to write, adding an HTML rendering of each
// Markdown artifact when withHTML is set.
func renderFiles(a holiday.Artifacts, withHTML bool) ([]storage.Object, error) {
	var files []storage.Object
	for _, f := range a.Files() {
		files = append(files, storage.Object{Name: f.Name, ContentType: f.ContentType, Body: []byte(f.Content)})
		if !withHTML || !strings.HasSuffix(f.Name, ".md") {
			continue
		}
		name := strings.TrimSuffix(f.Name, ".md")
		doc, err := markdown.Document(name, f.Content)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", f.Name, err)
		}
		files = append(files, storage.Object{Name: name + ".html", ContentType: "text/html; charset=utf-8", Body: []byte(doc)})
	}
	return files, nil
}

// writeFiles writes every file into dir atomically, creating dir if needed.
func writeFiles(dir string, files []storage.Object) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	for _, f := range files {
		if err := atomic.WriteFile(filepath.Join(dir, f.Name), bytes.NewReader(f.Body)); err != nil {
			return fmt.Errorf("write %s: %w", f.Name, err)
		}
	}
	return nil
}

// brandSlug returns the path segment for a brand, never empty.
func brandSlug(brand string) string {
	if s := slug.GenerateMax(brand, maxSlugLen); s != "" {
		return s
	}
	return fallbackSlug
}

func upload(ctx context.Context, cfg *config.Config, brand string, files []storage.Object, stdout io.Writer) error {
	client, err := storage.New(cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3PublicURL)
	if err != nil {
		return err
	}
	if client == nil {
		return errors.New("--upload requires S3_ENDPOINT, S3_ACCESS_KEY and S3_SECRET_KEY")
	}

	prefix := strings.Join([]string{uploadPrefix, brandSlug(brand), uuid.NewString()}, "/")
	uploaded, err := client.UploadAll(ctx, prefix, files)
	if err != nil {
		return err
	}
	slog.Info("artifacts uploaded", "bucket", client.Bucket(), "prefix", prefix, "count", len(uploaded))

	fmt.Fprintf(stdout, "\nSubidos a s3://%s/%s:\n", client.Bucket(), prefix)
	for _, u := range uploaded {
		fmt.Fprintf(stdout, "  %s\n", u.URL)
	}
	return nil
}
