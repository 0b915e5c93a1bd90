package catalog

import (
	"errors"
	"testing"
)

func validTemplate() Template {
	return Template{
		Name:             "Test smoke detectors",
		Description:      "Press the test button on every smoke detector",
		Category:         CategoryFireSafety,
		RiskCategory:     RiskFire,
		PointsValue:      8,
		Frequency:        FrequencyMonthly,
		VerificationType: VerificationPhoto,
	}
}

func TestTemplateValidateAccepts(t *testing.T) {
	if err := validTemplate().Validate(); err != nil {
		t.Fatalf("valid template rejected: %v", err)
	}
}

func TestTemplateValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Template)
		want   error
	}{
		{"empty name", func(tpl *Template) { tpl.Name = "  " }, ErrMissingName},
		{"empty description", func(tpl *Template) { tpl.Description = "" }, ErrMissingDescription},
		{"unknown category", func(tpl *Template) { tpl.Category = "cyber_safety" }, ErrInvalidCategory},
		{"unknown risk category", func(tpl *Template) { tpl.RiskCategory = "meteor" }, ErrInvalidRiskCategory},
		{"points too low", func(tpl *Template) { tpl.PointsValue = 0 }, ErrPointsOutOfRange},
		{"points too high", func(tpl *Template) { tpl.PointsValue = 11 }, ErrPointsOutOfRange},
		{"bad frequency", func(tpl *Template) { tpl.Frequency = "weekly" }, ErrInvalidFrequency},
		{"bad verification type", func(tpl *Template) { tpl.VerificationType = "video" }, ErrInvalidVerificationType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tpl := validTemplate()
			tc.mutate(&tpl)
			if err := tpl.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("Validate() = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestFallbackTemplatesAllValid(t *testing.T) {
	fallback := FallbackTemplates()
	if len(fallback) != 4 {
		t.Fatalf("fallback set has %d templates, want 4", len(fallback))
	}
	for _, tpl := range fallback {
		if err := tpl.Validate(); err != nil {
			t.Errorf("fallback template %q invalid: %v", tpl.Name, err)
		}
	}
}

func TestCodeSetsAreClosed(t *testing.T) {
	for _, code := range CategoryCodes() {
		if !IsValidCategory(code) {
			t.Errorf("category %q not accepted by its own validator", code)
		}
	}
	for _, code := range RiskCategoryCodes() {
		if !IsValidRiskCategory(code) {
			t.Errorf("risk category %q not accepted by its own validator", code)
		}
	}
	if IsValidCategory("") || IsValidRiskCategory("") {
		t.Error("empty code accepted")
	}
}
