package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"shipfree/internal/holiday"
	"shipfree/internal/models"
)

var testOpts = holiday.Options{BaseURL: "https://xilo.dev", Year: 2025}

// memCache is an in-memory ArtifactCache.
type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
	sets int
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	return v, ok
}

func (c *memCache) Set(_ context.Context, key string, body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = body
	c.sets++
}

func postGenerate(t *testing.T, h *Holiday, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/holiday-mvp/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.Generate(rr, req)
	return rr
}

type generateBody struct {
	Success bool     `json:"success"`
	Errors  []string `json:"errors"`
	Error   string   `json:"error"`
	Details string   `json:"details"`
	Data    struct {
		LandingSpec   models.LandingSpec       `json:"landing_spec"`
		ContentPlan   []models.ContentPlanItem `json:"content_plan"`
		ExecutionPlan models.ExecutionPlan     `json:"execution_plan"`
		Assumptions   []string                 `json:"assumptions"`
	} `json:"data"`
	Files holiday.Artifacts `json:"files"`
}

func decodeGenerate(t *testing.T, rr *httptest.ResponseRecorder) generateBody {
	t.Helper()
	var body generateBody
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, rr.Body.String())
	}
	return body
}

func TestGenerate_Success(t *testing.T) {
	h := NewHoliday(testOpts, nil)
	rr := postGenerate(t, h, `{"brand_name":"Xilo Labs","products_to_include":["plantillas","adviento"]}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
	if rr.Header().Get("X-Cache") != "" {
		t.Error("X-Cache set without a cache")
	}

	body := decodeGenerate(t, rr)
	if !body.Success {
		t.Fatal("success = false")
	}
	if len(body.Data.LandingSpec.Products) != 2 || len(body.Data.ContentPlan) != 2 {
		t.Errorf("products/content = %d/%d, want 2/2", len(body.Data.LandingSpec.Products), len(body.Data.ContentPlan))
	}
	if !body.Data.LandingSpec.HasSKU(holiday.BundleSKUID) {
		t.Error("bundle SKU missing")
	}
	if !strings.HasPrefix(body.Files.ContentPlanMD, "# Plan de Contenidos - Holiday MVP") {
		t.Errorf("content plan md = %.40q", body.Files.ContentPlanMD)
	}
	if !strings.Contains(body.Files.LandingSpecJSON, "https://xilo.dev") {
		t.Error("base URL not used in landing spec")
	}
	if len(body.Data.Assumptions) == 0 || !strings.HasPrefix(body.Files.AssumptionsMD, "# Suposiciones del Generador\n\n1. ") {
		t.Errorf("assumptions md = %q", body.Files.AssumptionsMD)
	}
	if strings.Contains(rr.Body.String(), `\u0026`) {
		t.Error("ampersands escaped in response")
	}
}

func TestGenerate_BadRequests(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantErrors []string
		wantPrefix string
	}{
		{
			name:       "missing brand and products",
			body:       `{}`,
			wantErrors: []string{holiday.ErrMsgBrandRequired, holiday.ErrMsgProductsRequired},
		},
		{
			name:       "empty products",
			body:       `{"brand_name":"Xilo","products_to_include":[]}`,
			wantErrors: []string{holiday.ErrMsgProductsRequired},
		},
		{
			name:       "malformed JSON",
			body:       `{"brand_name":`,
			wantPrefix: "JSON inválido: ",
		},
		{
			name:       "empty body",
			body:       ``,
			wantPrefix: "JSON inválido: ",
		},
		{
			name:       "trailing data",
			body:       `{"brand_name":"Xilo","products_to_include":["adviento"]} trailing`,
			wantPrefix: "JSON inválido: ",
		},
		{
			name:       "second object",
			body:       `{"brand_name":"Xilo","products_to_include":["adviento"]}{}`,
			wantPrefix: "JSON inválido: datos adicionales",
		},
		{
			name:       "wrong type",
			body:       `{"brand_name":42}`,
			wantPrefix: "JSON inválido: ",
		},
		{
			name:       "brand too long",
			body:       `{"brand_name":"` + strings.Repeat("a", 121) + `","products_to_include":["adviento"]}`,
			wantErrors: []string{"brand_name es demasiado largo (máx. 120 caracteres)."},
		},
		{
			name:       "body too large",
			body:       `{"brand_name":"` + strings.Repeat("a", maxBriefBytes) + `"}`,
			wantErrors: []string{msgBodyTooLarge},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := postGenerate(t, NewHoliday(testOpts, nil), tt.body)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400 (body %s)", rr.Code, rr.Body.String())
			}
			body := decodeGenerate(t, rr)
			if body.Success {
				t.Error("success = true")
			}
			if tt.wantErrors != nil && strings.Join(body.Errors, "|") != strings.Join(tt.wantErrors, "|") {
				t.Errorf("errors = %q, want %q", body.Errors, tt.wantErrors)
			}
			if tt.wantPrefix != "" && (len(body.Errors) != 1 || !strings.HasPrefix(body.Errors[0], tt.wantPrefix)) {
				t.Errorf("errors = %q, want one starting with %q", body.Errors, tt.wantPrefix)
			}
		})
	}
}

func TestGenerate_TrailingWhitespace(t *testing.T) {
	rr := postGenerate(t, NewHoliday(testOpts, nil), "{\"brand_name\":\"Xilo\",\"products_to_include\":[\"adviento\"]}\n \t\n")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rr.Code, rr.Body.String())
	}
}

func TestGenerate_PanicReturns500(t *testing.T) {
	h := NewHoliday(testOpts, nil)
	h.generate = func(models.GeneratorInput, holiday.Options) (*models.GeneratorOutput, error) {
		panic("plantilla rota")
	}

	rr := postGenerate(t, h, `{"brand_name":"Xilo","products_to_include":["adviento"]}`)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	body := decodeGenerate(t, rr)
	if body.Error != "Error interno al generar artefactos" || body.Details != "plantilla rota" {
		t.Errorf("error/details = %q/%q", body.Error, body.Details)
	}
}

func TestGenerate_Cache(t *testing.T) {
	mc := newMemCache()
	h := NewHoliday(testOpts, mc)
	brief := `{"brand_name":"Xilo","products_to_include":["recetario"]}`

	first := postGenerate(t, h, brief)
	if first.Code != http.StatusOK || first.Header().Get("X-Cache") != "MISS" {
		t.Fatalf("first: status %d, X-Cache %q", first.Code, first.Header().Get("X-Cache"))
	}

	calls := 0
	h.generate = func(in models.GeneratorInput, o holiday.Options) (*models.GeneratorOutput, error) {
		calls++
		return holiday.Generate(in, o)
	}

	second := postGenerate(t, h, brief)
	if second.Header().Get("X-Cache") != "HIT" {
		t.Errorf("second X-Cache = %q, want HIT", second.Header().Get("X-Cache"))
	}
	if second.Body.String() != first.Body.String() {
		t.Error("cached body differs")
	}
	if calls != 0 {
		t.Errorf("generator ran %d times on a cache hit", calls)
	}

	// An explicit currency changes the assumptions, so it is a new entry.
	third := postGenerate(t, h, `{"brand_name":"Xilo","currency":"MXN","products_to_include":["recetario"]}`)
	if third.Header().Get("X-Cache") != "MISS" || calls != 1 {
		t.Errorf("third X-Cache = %q, calls = %d", third.Header().Get("X-Cache"), calls)
	}

	// Invalid briefs are never cached.
	postGenerate(t, h, `{"brand_name":"Xilo"}`)
	if mc.sets != 2 {
		t.Errorf("cache sets = %d, want 2", mc.sets)
	}
}

func TestGenerateConfig(t *testing.T) {
	rr := httptest.NewRecorder()
	NewHoliday(testOpts, nil).Config(rr, httptest.NewRequest(http.MethodGet, "/api/holiday-mvp/generate", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}

	var body struct {
		Success bool `json:"success"`
		Config  struct {
			SupportedCurrencies []string       `json:"supported_currencies"`
			SupportedLocales    []string       `json:"supported_locales"`
			AvailableProducts   []string       `json:"available_products"`
			Defaults            map[string]any `json:"defaults"`
		} `json:"config"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}

	checks := []struct {
		name string
		got  string
		want string
	}{
		{"currencies", strings.Join(body.Config.SupportedCurrencies, ","), "MXN,USD,EUR"},
		{"locales", strings.Join(body.Config.SupportedLocales, ","), "es-MX,es-ES,en-US"},
		{"products", strings.Join(body.Config.AvailableProducts, ","), "adviento,recetario,plantillas,guia_ventas,kit_imprimible,taller_2026"},
		{"tone", body.Config.Defaults["tone_voice"].(string), "profesional y cercano"},
		{"sales", body.Config.Defaults["sales_stack"].(string), "Gumroad"},
		{"email", body.Config.Defaults["email_stack"].(string), "ConvertKit"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %q, want %q", c.name, c.got, c.want)
		}
	}
	if !body.Success {
		t.Error("success = false")
	}
}
