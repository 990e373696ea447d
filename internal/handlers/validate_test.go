package handlers

import (
	"strings"
	"testing"

	"shipfree/internal/models"
)

func TestValidateBrief(t *testing.T) {
	tests := []struct {
		name    string
		in      models.GeneratorInput
		wantErr string
	}{
		{"empty brief passes", models.GeneratorInput{}, ""},
		{"typical brief", models.GeneratorInput{BrandName: "Xilo", Channels: []string{"X", "IG"}, ProductsToInclude: []models.ProductID{"adviento"}}, ""},
		{"brand at limit", models.GeneratorInput{BrandName: strings.Repeat("ñ", 120)}, ""},
		{"brand too long", models.GeneratorInput{BrandName: strings.Repeat("a", 121)}, "brand_name es demasiado largo (máx. 120 caracteres)."},
		{"goal too long", models.GeneratorInput{PrimaryGoal: strings.Repeat("a", 301)}, "primary_goal es demasiado largo (máx. 300 caracteres)."},
		{"stack too long", models.GeneratorInput{EmailStack: strings.Repeat("a", 101)}, "email_stack es demasiado largo (máx. 100 caracteres)."},
		{"legal notes too long", models.GeneratorInput{LegalNotes: strings.Repeat("a", 2001)}, "legal_notes es demasiado largo (máx. 2000 caracteres)."},
		{"too many channels", models.GeneratorInput{Channels: make([]string, 11)}, "Demasiados canales (máx. 10)."},
		{"channel name too long", models.GeneratorInput{Channels: []string{strings.Repeat("x", 51)}}, "Nombre de canal demasiado largo (máx. 50 caracteres)."},
		{"too many products", models.GeneratorInput{ProductsToInclude: make([]models.ProductID, 21)}, "Demasiados productos (máx. 20)."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validateBrief(tt.in); got != tt.wantErr {
				t.Errorf("validateBrief() = %q, want %q", got, tt.wantErr)
			}
		})
	}
}
