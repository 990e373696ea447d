package holiday

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"shipfree/internal/models"
)

func TestQuickGenerate(t *testing.T) {
	out, err := QuickGenerate("Xilo Labs", []models.ProductID{"plantillas", "adviento"}, testOpts)
	if err != nil {
		t.Fatalf("QuickGenerate() error: %v", err)
	}

	if len(out.LandingSpec.Products) != 2 {
		t.Errorf("products = %d, want 2", len(out.LandingSpec.Products))
	}
	if len(out.ContentPlan) != 2 {
		t.Errorf("content plan = %d, want 2", len(out.ContentPlan))
	}
	if !out.LandingSpec.HasSKU(BundleSKUID) {
		t.Error("bundle SKU missing")
	}
	if out.LandingSpec.Brand.Tone != "profesional y festivo" {
		t.Errorf("tone = %q", out.LandingSpec.Brand.Tone)
	}
	// Only the optional brand constraints and legal notes are absent.
	want := []string{AssumptionBrandConstraints, AssumptionLegalNotes}
	if !reflect.DeepEqual(out.Assumptions, want) {
		t.Errorf("assumptions = %q, want %q", out.Assumptions, want)
	}
}

func TestGenerateValidation(t *testing.T) {
	_, err := Generate(models.GeneratorInput{BrandName: "Xilo"}, testOpts)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	if !reflect.DeepEqual(verr.Errors, []string{"Debe seleccionar al menos 1 producto"}) {
		t.Errorf("errors = %q", verr.Errors)
	}
}

func TestGenerateOmittedChannels(t *testing.T) {
	out, err := Generate(models.GeneratorInput{
		BrandName:         "Xilo",
		ProductsToInclude: []models.ProductID{"recetario"},
	}, testOpts)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if !contains(out.Assumptions, AssumptionChannels) {
		t.Error("channel default not recorded as an assumption")
	}
	var channels []string
	for _, a := range out.ExecutionPlan.DistributionPlan {
		channels = append(channels, a.Channel)
	}
	if got := strings.Join(channels, ","); got != "X,X,IG,IG,IG,LinkedIn,LinkedIn,Outreach Directo" {
		t.Errorf("distribution channels = %s", got)
	}
}

func TestGenerateCombinedGoal(t *testing.T) {
	out, err := Generate(models.GeneratorInput{
		BrandName:         "Xilo",
		PrimaryGoal:       "500 leads calificados + 100 ventas",
		ProductsToInclude: []models.ProductID{"guia_ventas"},
	}, testOpts)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if out.LandingSpec.Hero.Headline != HeadlineSalesAndLeads {
		t.Errorf("headline = %q", out.LandingSpec.Hero.Headline)
	}
	for _, f := range out.LandingSpec.FAQ {
		if f.Q == "¿Es realmente gratis?" {
			t.Error("free FAQ present for a sales goal")
		}
	}
}

func TestExportLandingRoundTrip(t *testing.T) {
	ids := ProductIDs()
	for _, currency := range models.Currencies {
		t.Run(string(currency), func(t *testing.T) {
			out, err := Generate(models.GeneratorInput{
				BrandName:         "Xilo & Co <beta>",
				Currency:          currency,
				ProductsToInclude: ids,
			}, testOpts)
			if err != nil {
				t.Fatalf("Generate() error: %v", err)
			}
			art, err := Export(out)
			if err != nil {
				t.Fatalf("Export() error: %v", err)
			}

			var decoded models.LandingSpec
			if err := json.Unmarshal([]byte(art.LandingSpecJSON), &decoded); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if !reflect.DeepEqual(decoded, out.LandingSpec) {
				t.Error("landing spec did not survive a JSON round trip")
			}
		})
	}
}

func TestExportLandingFormat(t *testing.T) {
	out, err := QuickGenerate("Xilo", []models.ProductID{"adviento"}, testOpts)
	if err != nil {
		t.Fatalf("QuickGenerate() error: %v", err)
	}
	art, err := Export(out)
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	js := art.LandingSpecJSON

	if !strings.HasPrefix(js, "{\n  \"brand\": {\n    \"name\": \"Xilo\",") {
		t.Errorf("unexpected JSON prefix: %q", js[:40])
	}
	if strings.HasSuffix(js, "\n") {
		t.Error("trailing newline")
	}
	if !strings.Contains(js, "?product=adviento&utm_source=product_card") {
		t.Error("ampersand was escaped")
	}
	keys := []string{`"brand"`, `"hero"`, `"value_props"`, `"how_it_works"`, `"products"`, `"pricing_table"`, `"faq"`, `"social_proof"`, `"analytics"`, `"legal"`}
	last := -1
	for _, k := range keys {
		i := strings.Index(js, "\n  "+k+":")
		if i < last {
			t.Errorf("key %s out of order", k)
		}
		last = i
	}
}

func TestAssumptionsMarkdown(t *testing.T) {
	if got := AssumptionsMarkdown(nil); got != "# Suposiciones del Generador\n\n"+NoAssumptionsNote+"\n" {
		t.Errorf("empty = %q", got)
	}
	got := AssumptionsMarkdown([]string{"uno", "dos"})
	if got != "# Suposiciones del Generador\n\n1. uno\n2. dos\n" {
		t.Errorf("list = %q", got)
	}
}

func TestArtifactFiles(t *testing.T) {
	art := Artifacts{LandingSpecJSON: "{}", ContentPlanMD: "c", ExecutionPlanMD: "e", AssumptionsMD: "a"}
	files := art.Files()
	var names []string
	for _, f := range files {
		names = append(names, f.Name)
	}
	if got := strings.Join(names, ","); got != "landing_spec.json,content_plan.md,execution_plan.md,assumptions.md" {
		t.Errorf("names = %s", got)
	}
	if files[0].Content != "{}" || files[3].Content != "a" {
		t.Error("contents not mapped to files")
	}
}

func TestContentPlanItemJSONKeepsPromptOrder(t *testing.T) {
	out, err := QuickGenerate("Xilo", []models.ProductID{"taller_2026"}, testOpts)
	if err != nil {
		t.Fatalf("QuickGenerate() error: %v", err)
	}
	data, err := MarshalIndent(out.ContentPlan[0])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	js := string(data)
	order := []string{"temario_90min", "outline_slides", "workbook_contenido", "template_notion", "email_seguimiento"}
	last := -1
	for _, name := range order {
		i := strings.Index(js, `"`+name+`":`)
		if i <= last {
			t.Fatalf("prompt %s out of order in %s", name, js)
		}
		last = i
	}
}
