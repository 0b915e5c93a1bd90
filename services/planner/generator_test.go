package planner

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/shashank-padala/insurus-sub000/catalog"
	"github.com/shashank-padala/insurus-sub000/models"
	"github.com/shashank-padala/insurus-sub000/utils"
)

func chatReturning(raw string, err error) utils.ChatFunc {
	return func(messages []utils.ChatMessage, systemPrompt string) (string, error) {
		return raw, err
	}
}

func genProperty() *models.Property {
	return &models.Property{ID: 1, Address: "1 Main St", City: "Springfield", PropertyType: "house"}
}

func TestGenerateFallsBackOnCallError(t *testing.T) {
	g := &Generator{Chat: chatReturning("", errors.New("upstream down"))}
	got := g.Generate(genProperty(), nil)
	if len(got) != len(catalog.FallbackTemplates()) {
		t.Fatalf("templates = %d, want fallback set of %d", len(got), len(catalog.FallbackTemplates()))
	}
}

func TestGenerateFallsBackOnGarbage(t *testing.T) {
	g := &Generator{Chat: chatReturning("not json at all", nil)}
	got := g.Generate(genProperty(), nil)
	if len(got) != len(catalog.FallbackTemplates()) {
		t.Fatalf("templates = %d, want fallback set of %d", len(got), len(catalog.FallbackTemplates()))
	}
}

func TestGenerateFallsBackWhenNothingSurvives(t *testing.T) {
	payload, _ := json.Marshal(map[string]interface{}{
		"tasks": []catalog.Template{
			{Name: "No description", Category: catalog.CategoryFireSafety, RiskCategory: catalog.RiskFire,
				PointsValue: 5, Frequency: catalog.FrequencyMonthly, VerificationType: catalog.VerificationPhoto},
			{Name: "Bad points", Description: "d", Category: catalog.CategoryFireSafety, RiskCategory: catalog.RiskFire,
				PointsValue: 50, Frequency: catalog.FrequencyMonthly, VerificationType: catalog.VerificationPhoto},
		},
	})
	g := &Generator{Chat: chatReturning(string(payload), nil)}
	got := g.Generate(genProperty(), nil)
	if len(got) != len(catalog.FallbackTemplates()) {
		t.Fatalf("templates = %d, want fallback set of %d", len(got), len(catalog.FallbackTemplates()))
	}
}

func TestGenerateKeepsValidDropsInvalid(t *testing.T) {
	valid := catalog.Template{
		Name: "Test smoke detectors", Description: "Press the button",
		Category: catalog.CategoryFireSafety, RiskCategory: catalog.RiskFire,
		PointsValue: 8, Frequency: catalog.FrequencyMonthly, VerificationType: catalog.VerificationPhoto,
	}
	invalid := valid
	invalid.Name = "Bad category"
	invalid.Category = "cyber_safety"

	payload, _ := json.Marshal(map[string]interface{}{"tasks": []catalog.Template{valid, invalid}})
	g := &Generator{Chat: chatReturning(string(payload), nil)}

	got := g.Generate(genProperty(), nil)
	if len(got) != 1 {
		t.Fatalf("templates = %d, want 1 (invalid candidate dropped)", len(got))
	}
	if got[0].Name != valid.Name {
		t.Errorf("kept template = %q, want %q", got[0].Name, valid.Name)
	}
}

func TestBuildPromptMentionsPropertyAndCodes(t *testing.T) {
	p := genProperty()
	recent := []models.TaskChecklist{{ChecklistMonth: day(2024, 5, 1), Status: models.ChecklistCompleted}}
	prompt := buildPrompt(p, recent)

	for _, want := range []string{"1 Main St", "house", catalog.CategoryFireSafety, catalog.RiskFire, "2024-05"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
