// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package holiday

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"shipfree/internal/models"
)

// NoAssumptionsNote replaces the numbered list when nothing was assumed.
const NoAssumptionsNote = "*No se hicieron suposiciones. Todos los parámetros fueron proporcionados.*"

// Artifacts holds the serialized outputs of a generation run.
type Artifacts struct {
	LandingSpecJSON string `json:"landing_spec_json"`
	ContentPlanMD   string `json:"content_plan_md"`
	ExecutionPlanMD string `json:"execution_plan_md"`
	AssumptionsMD   string `json:"assumptions_md"`
}

// ArtifactFile is one exported artifact with its on-disk name.
type ArtifactFile struct {
	Name        string
	ContentType string
	Content     string
}

// Files lists the artifacts in a fixed order.
func (a Artifacts) Files() []ArtifactFile {
	return []ArtifactFile{
		{Name: "landing_spec.json", ContentType: "application/json", Content: a.LandingSpecJSON},
		{Name: "content_plan.md", ContentType: "text/markdown; charset=utf-8", Content: a.ContentPlanMD},
		{Name: "execution_plan.md", ContentType: "text/markdown; charset=utf-8", Content: a.ExecutionPlanMD},
		{Name: "assumptions.md", ContentType: "text/markdown; charset=utf-8", Content: a.AssumptionsMD},
	}
}

// Export serializes a generator output. The landing spec is indented with
// two spaces, keeps declaration key order and leaves HTML characters
// unescaped.
func Export(out *models.GeneratorOutput) (Artifacts, error) {
	landing, err := MarshalIndent(out.LandingSpec)
	if err != nil {
		return Artifacts{}, fmt.Errorf("marshal landing spec: %w", err)
	}
	return Artifacts{
		LandingSpecJSON: string(landing),
		ContentPlanMD:   ContentPlanMarkdown(out.ContentPlan),
		ExecutionPlanMD: ExecutionPlanMarkdown(out.ExecutionPlan),
		AssumptionsMD:   AssumptionsMarkdown(out.Assumptions),
	}, nil
}

// MarshalIndent encodes v with two-space indentation, without HTML escaping
// and without a trailing newline.
func MarshalIndent(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// AssumptionsMarkdown renders the assumption notes as a numbered list.
func AssumptionsMarkdown(assumptions []string) string {
	var b strings.Builder
	b.WriteString("# Suposiciones del Generador\n\n")
	if len(assumptions) == 0 {
		b.WriteString(NoAssumptionsNote + "\n")
		return b.String()
	}
	for i, a := range assumptions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, a)
	}
	return b.String()
}
