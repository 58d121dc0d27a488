package domain

import "testing"

func TestJurisdictions_AllStatesPresent(t *testing.T) {
	states := []string{
		"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
		"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
		"MD", "MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH",
		"NJ", "NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI",
		"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
	}
	for _, code := range states {
		j, ok := JurisdictionByCode(code)
		if !ok {
			t.Errorf("missing jurisdiction %s", code)
			continue
		}
		if j.Code != code {
			t.Errorf("jurisdiction %s has mismatched code %s", code, j.Code)
		}
		if j.Location == "" {
			t.Errorf("jurisdiction %s has no location name", code)
		}
	}
}

func TestJurisdictions_AllProvincesPresent(t *testing.T) {
	provinces := []string{"AB", "BC", "MB", "NB", "NL", "NT", "NS", "NU", "ON", "PE", "QC", "SK", "YT"}
	for _, code := range provinces {
		if _, ok := JurisdictionByCode(code); !ok {
			t.Errorf("missing jurisdiction %s", code)
		}
	}
}

func TestJurisdictions_NoSalesTaxStates(t *testing.T) {
	for _, code := range []string{"AK", "DE", "MT", "NH", "OR"} {
		j, ok := JurisdictionByCode(code)
		if !ok {
			t.Fatalf("missing jurisdiction %s", code)
		}
		if len(j.Taxes) != 0 {
			t.Errorf("%s should carry no tax components, got %+v", code, j.Taxes)
		}
	}
}

func TestJurisdictions_CanadianStacking(t *testing.T) {
	tests := []struct {
		code  string
		types []TaxType
	}{
		{"ON", []TaxType{TaxHST}},
		{"QC", []TaxType{TaxGST, TaxQST}},
		{"BC", []TaxType{TaxGST, TaxPST}},
		{"AB", []TaxType{TaxGST}},
	}
	for _, tt := range tests {
		j, ok := JurisdictionByCode(tt.code)
		if !ok {
			t.Fatalf("missing jurisdiction %s", tt.code)
		}
		if len(j.Taxes) != len(tt.types) {
			t.Errorf("%s: expected %d components, got %d", tt.code, len(tt.types), len(j.Taxes))
			continue
		}
		for i, typ := range tt.types {
			if j.Taxes[i].Type != typ {
				t.Errorf("%s component %d: expected %s, got %s", tt.code, i, typ, j.Taxes[i].Type)
			}
		}
	}
}

func TestJurisdictions_Fallbacks(t *testing.T) {
	us, ok := JurisdictionByCode(JurisdictionDefaultUS)
	if !ok || len(us.Taxes) != 1 || us.Taxes[0].Rate != 0.06 {
		t.Fatalf("unexpected US fallback %+v", us)
	}
	if !us.IsFallback() {
		t.Fatal("DEFAULT_US must report as a fallback")
	}

	ca, ok := JurisdictionByCode(JurisdictionDefaultCA)
	if !ok || len(ca.Taxes) != 1 || ca.Taxes[0].Type != TaxGST {
		t.Fatalf("unexpected CA fallback %+v", ca)
	}

	intl, ok := JurisdictionByCode(JurisdictionDefaultInternational)
	if !ok || len(intl.Taxes) != 0 {
		t.Fatalf("international fallback must be tax-free, got %+v", intl)
	}

	if ny, _ := JurisdictionByCode("NY"); ny.IsFallback() {
		t.Fatal("NY must not report as a fallback")
	}
}

func TestJurisdictionByCode_Unknown(t *testing.T) {
	if _, ok := JurisdictionByCode("ZZ"); ok {
		t.Fatal("unknown code must not resolve")
	}
}
