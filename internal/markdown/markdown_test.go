package markdown

import (
	"strings"
	"testing"
)

func TestToHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "heading gets an id",
			input: "## Cronograma Sábado",
			want:  []string{"<h2 id=", ">Cronograma Sábado</h2>"},
		},
		{
			name:  "table",
			input: "| Métrica | Objetivo |\n|---------|----------|\n| Visitas | 500+ |\n",
			want:  []string{"<table>", "<th>Métrica</th>", "<td>500+</td>"},
		},
		{
			name:  "fenced code block",
			input: "```\nPROMPT PARA CALENDARIO\n```\n",
			want:  []string{"<pre", "PROMPT PARA CALENDARIO"},
		},
		{
			name:  "bold and list",
			input: "**X**\n- Acción: Thread\n",
			want:  []string{"<strong>X</strong>", "<li>Acción: Thread</li>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToHTML(tt.input)
			if err != nil {
				t.Fatalf("ToHTML() error: %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("output %q missing %q", got, w)
				}
			}
		})
	}
}

func TestToHTMLEscapesRawHTML(t *testing.T) {
	got, err := ToHTML("Marca <script>alert(1)</script>\n\n<div onclick=x>hola</div>\n")
	if err != nil {
		t.Fatalf("ToHTML() error: %v", err)
	}
	if strings.Contains(got, "<script>") || strings.Contains(got, "<div onclick") {
		t.Errorf("raw HTML passed through: %q", got)
	}
}

func TestDocument(t *testing.T) {
	got, err := Document("Plan <Xilo>", "# Hola\n")
	if err != nil {
		t.Fatalf("Document() error: %v", err)
	}
	if !strings.HasPrefix(got, "<!DOCTYPE html>\n") {
		t.Errorf("missing doctype: %q", got[:20])
	}
	if !strings.Contains(got, "<title>Plan &lt;Xilo&gt;</title>") {
		t.Error("title not escaped")
	}
	if !strings.Contains(got, `<meta charset="utf-8">`) {
		t.Error("missing charset")
	}
	if !strings.Contains(got, ">Hola</h1>") || !strings.HasSuffix(got, "</html>\n") {
		t.Errorf("body not embedded: %q", got)
	}
}
