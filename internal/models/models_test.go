package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

// TestCurrencyValid verifies that only the three supported currencies are
// accepted, case sensitively.
func TestCurrencyValid(t *testing.T) {
	tests := []struct {
		c    Currency
		want bool
	}{
		{CurrencyMXN, true},
		{CurrencyUSD, true},
		{CurrencyEUR, true},
		{Currency("mxn"), false},
		{Currency("GBP"), false},
		{Currency(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.c), func(t *testing.T) {
			if got := tt.c.Valid(); got != tt.want {
				t.Errorf("Currency(%q).Valid() = %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}

func TestLocaleValid(t *testing.T) {
	for _, l := range Locales {
		if !l.Valid() {
			t.Errorf("Locale(%q).Valid() = false", l)
		}
	}
	if Locale("es").Valid() {
		t.Error(`Locale("es").Valid() = true`)
	}
}

// TestPriceMap verifies per-currency lookup and that undefined prices are
// left out of the JSON encoding.
func TestPriceMap(t *testing.T) {
	p := PriceMap{MXN: 129, USD: 7}

	if got := p.Get(CurrencyMXN); got != 129 {
		t.Errorf("Get(MXN) = %d, want 129", got)
	}
	if got := p.Get(CurrencyEUR); got != 0 {
		t.Errorf("Get(EUR) = %d, want 0", got)
	}
	if got := p.Get(Currency("GBP")); got != 0 {
		t.Errorf("Get(GBP) = %d, want 0", got)
	}
	if p.IsZero() || !(PriceMap{}).IsZero() {
		t.Error("IsZero mismatch")
	}

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); got != `{"MXN":129,"USD":7}` {
		t.Errorf("json = %s", got)
	}
}

// TestPromptSetKeepsOrder verifies that prompt sets encode and decode as
// JSON objects without reordering their keys.
func TestPromptSetKeepsOrder(t *testing.T) {
	set := PromptSet{
		{Name: "portada", Template: "Diseña la portada de <Xilo> & co"},
		{Name: "dia_1", Template: "Día 1"},
		{Name: "avisos", Template: "Avisos"},
	}

	data, err := json.Marshal(set)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"portada":"Diseña la portada de <Xilo> & co","dia_1":"Día 1","avisos":"Avisos"}`
	if string(data) != want {
		t.Errorf("json = %s\nwant  %s", data, want)
	}

	var back PromptSet
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(back, set) {
		t.Errorf("decoded = %+v", back)
	}
}

func TestPromptSetUnmarshalErrors(t *testing.T) {
	for _, in := range []string{`[]`, `{"a":1}`, `"x"`} {
		var p PromptSet
		if err := json.Unmarshal([]byte(in), &p); err == nil {
			t.Errorf("Unmarshal(%s) succeeded", in)
		}
	}

	var p PromptSet
	if err := json.Unmarshal([]byte(`null`), &p); err != nil || p != nil {
		t.Errorf("Unmarshal(null) = %v, %v", p, err)
	}
}

func TestHasSKU(t *testing.T) {
	l := &LandingSpec{PricingTable: PricingTable{SKUs: []SKU{{ID: "sku_adviento"}, {ID: "sku_bundle_navidad"}}}}
	if !l.HasSKU("sku_bundle_navidad") || l.HasSKU("sku_recetario") {
		t.Error("HasSKU mismatch")
	}
}

func TestActionsByPriority(t *testing.T) {
	plan := &ExecutionPlan{DistributionPlan: []DistributionAction{
		{Channel: "X", Priority: PriorityAlta},
		{Channel: "IG", Priority: PriorityMedia},
		{Channel: "LinkedIn", Priority: PriorityAlta},
	}}

	got := plan.ActionsByPriority(PriorityAlta)
	if len(got) != 2 || got[0].Channel != "X" || got[1].Channel != "LinkedIn" {
		t.Errorf("alta = %+v", got)
	}
	if got := plan.ActionsByPriority(PriorityBaja); len(got) != 0 {
		t.Errorf("baja = %+v", got)
	}
}
