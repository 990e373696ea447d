// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"

	"shipfree/internal/cache"
	"shipfree/internal/holiday"
	"shipfree/internal/middleware"
	"shipfree/internal/models"
)

// Messages returned by the generate endpoint.
const (
	msgInternalError = "Error interno al generar artefactos"
	msgInvalidJSON   = "JSON inválido"
	msgBodyTooLarge  = "El cuerpo de la solicitud excede 64 KiB"
)

// ArtifactCache stores complete generate responses. *cache.ArtifactCache
// satisfies it.
type ArtifactCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, body []byte)
}

// Holiday serves the holiday MVP generator.
type Holiday struct {
	opts     holiday.Options
	cache    ArtifactCache
	generate func(models.GeneratorInput, holiday.Options) (*models.GeneratorOutput, error)
}

// NewHoliday creates the generator handlers. artifacts may be nil, which
// disables response caching.
func NewHoliday(opts holiday.Options, artifacts ArtifactCache) *Holiday {
	return &Holiday{opts: opts, cache: artifacts, generate: holiday.Generate}
}

type generateResponse struct {
	Success bool                    `json:"success"`
	Data    *models.GeneratorOutput `json:"data"`
	Files   holiday.Artifacts       `json:"files"`
}

// cacheKeyInput identifies a generate response. The raw brief is used
// rather than the normalized one because assumptions depend on which
// fields were absent.
type cacheKeyInput struct {
	Brief   models.GeneratorInput `json:"brief"`
	BaseURL string                `json:"base_url"`
	Year    int                   `json:"year"`
}

// decodeBrief decodes exactly one JSON value from body. Anything but
// whitespace after it is an error.
func decodeBrief(body io.Reader, in *models.GeneratorInput) error {
	dec := json.NewDecoder(body)
	if err := dec.Decode(in); err != nil {
		return err
	}
	var extra json.RawMessage
	switch err := dec.Decode(&extra); {
	case errors.Is(err, io.EOF):
		return nil
	case err != nil:
		return err
	default:
		return errors.New("datos adicionales después del objeto JSON")
	}
}

// Generate handles POST /api/holiday-mvp/generate. It answers 400 with the
// list of problems for malformed or invalid briefs, 200 with the generated
// artifacts, and 500 if generation fails unexpectedly.
func (h *Holiday) Generate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBriefBytes)

	var in models.GeneratorInput
	if err := decodeBrief(r.Body, &in); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeErrors(w, http.StatusBadRequest, []string{msgBodyTooLarge})
			return
		}
		writeErrors(w, http.StatusBadRequest, []string{fmt.Sprintf("%s: %v", msgInvalidJSON, err)})
		return
	}

	if msg := validateBrief(in); msg != "" {
		writeErrors(w, http.StatusBadRequest, []string{msg})
		return
	}

	opts := h.opts.Resolved()
	key := ""
	if h.cache != nil {
		var err error
		key, err = cache.Key(cacheKeyInput{Brief: in, BaseURL: opts.BaseURL, Year: opts.Year})
		if err != nil {
			slog.Warn("artifact cache key failed", "error", err)
		} else if body, ok := h.cache.Get(r.Context(), key); ok {
			w.Header().Set("X-Cache", "HIT")
			writeBody(w, http.StatusOK, body)
			return
		}
	}

	out, err := h.run(r.Context(), in, opts)
	if err != nil {
		var verr *holiday.ValidationError
		if errors.As(err, &verr) {
			writeErrors(w, http.StatusBadRequest, verr.Errors)
			return
		}
		slog.Error("holiday mvp generation failed",
			"error", err,
			"brand", in.BrandName,
			"request_id", middleware.GetRequestID(r.Context()),
		)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: msgInternalError, Details: err.Error()})
		return
	}

	files, err := holiday.Export(out)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: msgInternalError, Details: err.Error()})
		return
	}

	body, err := encodeJSON(generateResponse{Success: true, Data: out, Files: files})
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: msgInternalError, Details: err.Error()})
		return
	}

	if h.cache != nil && key != "" {
		h.cache.Set(r.Context(), key, body)
		w.Header().Set("X-Cache", "MISS")
	}
	slog.Info("holiday mvp generated",
		"products", len(out.ContentPlan),
		"assumptions", len(out.Assumptions),
		"request_id", middleware.GetRequestID(r.Context()),
	)
	writeBody(w, http.StatusOK, body)
}

// run calls the generator and turns a panic into an error.
func (h *Holiday) run(ctx context.Context, in models.GeneratorInput, opts holiday.Options) (out *models.GeneratorOutput, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("holiday mvp generator panicked",
				"error", rec,
				"request_id", middleware.GetRequestID(ctx),
				"stack", string(debug.Stack()),
			)
			out, err = nil, fmt.Errorf("%v", rec)
		}
	}()
	return h.generate(in, opts)
}

type generatorConfig struct {
	SupportedCurrencies []models.Currency  `json:"supported_currencies"`
	SupportedLocales    []models.Locale    `json:"supported_locales"`
	AvailableProducts   []models.ProductID `json:"available_products"`
	Defaults            generatorDefaults  `json:"defaults"`
}

type generatorDefaults struct {
	Currency   models.Currency `json:"currency"`
	Locale     models.Locale   `json:"locale"`
	ToneVoice  string          `json:"tone_voice"`
	SalesStack string          `json:"sales_stack"`
	EmailStack string          `json:"email_stack"`
	Channels   []string        `json:"channels"`
}

// Config handles GET /api/holiday-mvp/generate and returns the supported
// enumerations and the defaults the normalizer applies.
func (h *Holiday) Config(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Success bool            `json:"success"`
		Config  generatorConfig `json:"config"`
	}{
		Success: true,
		Config: generatorConfig{
			SupportedCurrencies: models.Currencies,
			SupportedLocales:    models.Locales,
			AvailableProducts:   holiday.ProductIDs(),
			Defaults: generatorDefaults{
				Currency:   holiday.DefaultCurrency,
				Locale:     holiday.DefaultLocale,
				ToneVoice:  holiday.DefaultTone,
				SalesStack: holiday.DefaultSalesStack,
				EmailStack: holiday.DefaultEmailStack,
				Channels:   holiday.DefaultChannels(),
			},
		},
	})
}
