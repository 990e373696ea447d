package holiday

import (
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"shipfree/internal/models"
)

func TestContentPlanOrderAndShape(t *testing.T) {
	ids := ProductIDs()
	in := mustNormalize(t, models.GeneratorInput{BrandName: "Xilo", ProductsToInclude: ids})
	items := ContentPlan(in)

	if len(items) != len(ids) {
		t.Fatalf("items len = %d, want %d", len(items), len(ids))
	}
	for i, item := range items {
		if item.ProductID != ids[i] {
			t.Errorf("items[%d].ProductID = %s, want %s", i, item.ProductID, ids[i])
		}
		def, _ := Lookup(ids[i])
		if item.ProductTitle != def.Title {
			t.Errorf("items[%d].ProductTitle = %q", i, item.ProductTitle)
		}
		if len(item.Deliverables) == 0 || len(item.ProductionOrder) == 0 || len(item.GenerationPrompts) == 0 ||
			len(item.AcceptanceCriteria) == 0 || len(item.FileStructure) == 0 || len(item.SampleExamples) == 0 {
			t.Errorf("items[%d] has an empty section", i)
		}
		for _, p := range item.GenerationPrompts {
			if strings.Contains(p.Template, "{{") || strings.Contains(p.Template, "<no value>") {
				t.Errorf("%s/%s left template actions unrendered", item.ProductID, p.Name)
			}
		}
	}
}

func TestContentPlanInterpolation(t *testing.T) {
	in := mustNormalize(t, fullBrief())
	in.ProductsToInclude = []models.ProductID{"guia_ventas", "adviento"}
	items := ContentPlan(in)

	checklist, ok := promptNamed(items[0].GenerationPrompts, "checklist_prelaunch")
	if !ok {
		t.Fatal("checklist_prelaunch prompt missing")
	}
	for _, want := range []string{"Canales: LinkedIn", "Stack: Stripe + Resend", "Audiencia: diseñadores freelance"} {
		if !strings.Contains(checklist, want) {
			t.Errorf("checklist prompt missing %q", want)
		}
	}

	pdf, _ := promptNamed(items[1].GenerationPrompts, "diseño_pdf")
	if !strings.Contains(pdf, "Paleta: azul y blanco\n") {
		t.Error("brand constraints not used as palette")
	}

	in.BrandConstraints = ""
	pdf, _ = promptNamed(ContentPlan(in)[1].GenerationPrompts, "diseño_pdf")
	if !strings.Contains(pdf, "Paleta: rojo navideño (#C41E3A)") {
		t.Error("default palette not used without brand constraints")
	}
}

func TestContentPlanPromptOrder(t *testing.T) {
	in := mustNormalize(t, models.GeneratorInput{BrandName: "Xilo", ProductsToInclude: []models.ProductID{"plantillas"}})
	var names []string
	for _, p := range ContentPlan(in)[0].GenerationPrompts {
		names = append(names, p.Name)
	}
	want := "categorias_contenido,diseñar_plantilla,caption_corto,guia_uso"
	if got := strings.Join(names, ","); got != want {
		t.Errorf("prompt order = %s, want %s", got, want)
	}
}

func TestPromptHeading(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"brainstorm_temas", "Brainstorm Temas"},
		{"calendario_10_dias", "Calendario 10 Dias"},
		{"diseño_pdf", "DiseñO Pdf"},
		{"temario_90min", "Temario 90min"},
		{"kpi_cheatsheet", "Kpi Cheatsheet"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := promptHeading(tt.key); got != tt.want {
				t.Errorf("promptHeading(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

// headings parses md and returns "level:text" for every heading.
func headings(t *testing.T, md string) []string {
	t.Helper()
	src := []byte(md)
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var out []string
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if h, ok := n.(*ast.Heading); ok && entering {
			out = append(out, strings.Repeat("#", h.Level)+" "+string(h.Text(src)))
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	return out
}

func TestContentPlanMarkdownStructure(t *testing.T) {
	in := mustNormalize(t, models.GeneratorInput{
		BrandName:         "Xilo",
		ProductsToInclude: []models.ProductID{"adviento", "kit_imprimible"},
	})
	md := ContentPlanMarkdown(ContentPlan(in))

	if !strings.HasPrefix(md, "# Plan de Contenidos - Holiday MVP\n\n*Generado automáticamente por Holiday MVP Generator*\n\n---\n\n") {
		t.Errorf("unexpected preamble: %q", md[:80])
	}

	got := headings(t, md)
	want := []string{
		"# Plan de Contenidos - Holiday MVP",
		"## 1. Calendario de Adviento Digital",
		"### Entregables",
		"### Orden de Producción",
		"### Prompts de Generación",
		"#### Brainstorm Temas",
		"#### Redactar Reto",
		"#### DiseñO Pdf",
		"### Criterios de Aceptación",
		"### Estructura de Archivos",
		"### Ejemplos de Muestra",
		"## 2. Kit Imprimible de Navidad",
		"### Entregables",
		"### Orden de Producción",
		"### Prompts de Generación",
		"#### Categorias Imprimibles",
		"#### DiseñAr Etiquetas",
		"#### Juego Bingo",
		"#### Lista Compras",
		"### Criterios de Aceptación",
		"### Estructura de Archivos",
		"### Ejemplos de Muestra",
	}
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("headings:\n%s\nwant:\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
	if !strings.Contains(md, "- ✅ 24 retos únicos, sin repetir conceptos\n") {
		t.Error("acceptance criteria not rendered as checked list")
	}
	if !strings.HasSuffix(md, "```\n\n---\n\n") {
		t.Error("document does not end with a rule after the last item")
	}
}

// promptNamed returns the template of the prompt called name.
func promptNamed(set models.PromptSet, name string) (string, bool) {
	for _, np := range set {
		if np.Name == name {
			return np.Template, true
		}
	}
	return "", false
}
