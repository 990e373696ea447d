// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// NamedPrompt is a reusable generation prompt template.
type NamedPrompt struct {
	Name     string
	Template string
}

// PromptSet is an ordered name → template mapping. It encodes as a JSON
// object whose keys keep their declaration order.
type PromptSet []NamedPrompt

// MarshalJSON encodes the set as an object in declaration order.
func (p PromptSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, np := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(np.Name); err != nil {
			return nil, err
		}
		buf.Truncate(buf.Len() - 1) // Encode appends a newline.
		buf.WriteByte(':')
		if err := enc.Encode(np.Template); err != nil {
			return nil, err
		}
		buf.Truncate(buf.Len() - 1)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object, preserving key order.
func (p *PromptSet) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*p = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("prompt set: expected object, got %v", tok)
	}

	set := PromptSet{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("prompt set: expected string key, got %v", keyTok)
		}
		var tmpl string
		if err := dec.Decode(&tmpl); err != nil {
			return fmt.Errorf("prompt set %q: %w", key, err)
		}
		set = append(set, NamedPrompt{Name: key, Template: tmpl})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*p = set
	return nil
}

// ContentPlanItem is the production plan for one selected product.
type ContentPlanItem struct {
	ProductID          ProductID `json:"product_id"`
	ProductTitle       string    `json:"product_title"`
	Deliverables       []string  `json:"deliverables"`
	ProductionOrder    []string  `json:"production_order"`
	GenerationPrompts  PromptSet `json:"generation_prompts"`
	AcceptanceCriteria []string  `json:"acceptance_criteria"`
	FileStructure      []string  `json:"file_structure"`
	SampleExamples     []string  `json:"sample_examples"`
}

// Metrics is a visits/leads/sales triple.
type Metrics struct {
	Visits int `json:"visits"`
	Leads  int `json:"leads"`
	Sales  int `json:"sales"`
}

// ScheduleBlock is a time slot of a launch day.
type ScheduleBlock struct {
	Time     string   `json:"time"`
	Duration string   `json:"duration"`
	Tasks    []string `json:"tasks"`
	Owner    string   `json:"owner"`
}

// DistributionAction is a single publishing action on a channel.
type DistributionAction struct {
	Channel  string   `json:"channel"`
	Action   string   `json:"action"`
	Format   string   `json:"format"`
	Priority Priority `json:"priority"`
}

// Thresholds are the go/maybe/kill decision tiers.
type Thresholds struct {
	Go    Metrics `json:"go"`
	Maybe Metrics `json:"maybe"`
	Kill  Metrics `json:"kill"`
}

// ABTest describes the minimal A/B experiment.
type ABTest struct {
	Variable string `json:"variable"`
	VariantA string `json:"variant_a"`
	VariantB string `json:"variant_b"`
	Metric   string `json:"metric"`
}

// ExperimentConfig bundles decision thresholds and the A/B test.
type ExperimentConfig struct {
	Thresholds Thresholds `json:"thresholds"`
	ABTest     ABTest     `json:"ab_test"`
}

// ExecutionPlan is the weekend launch plan.
type ExecutionPlan struct {
	Objective            string               `json:"objective"`
	SuccessMetrics       Metrics              `json:"success_metrics"`
	SaturdaySchedule     []ScheduleBlock      `json:"saturday_schedule"`
	SundaySchedule       []ScheduleBlock      `json:"sunday_schedule"`
	Roles                []string             `json:"roles"`
	PublicationChecklist []string             `json:"publication_checklist"`
	DistributionPlan     []DistributionAction `json:"distribution_plan"`
	Experiments          ExperimentConfig     `json:"experiments"`
}

// ActionsByPriority returns the distribution actions with priority p, in
// plan order.
func (e *ExecutionPlan) ActionsByPriority(p Priority) []DistributionAction {
	var out []DistributionAction
	for _, a := range e.DistributionPlan {
		if a.Priority == p {
			out = append(out, a)
		}
	}
	return out
}
