package planner

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/shashank-padala/insurus-sub000/catalog"
	"github.com/shashank-padala/insurus-sub000/models"
	"github.com/shashank-padala/insurus-sub000/utils"
)

// Generator produces candidate task templates for a property. One external
// generation call, a validation gate, and a fallback set; never a retry. A
// generation outage must not block property onboarding.
type Generator struct {
	Chat utils.ChatFunc
}

func NewGenerator() *Generator {
	return &Generator{Chat: utils.CallOpenAI}
}

type generatedPayload struct {
	Tasks []catalog.Template `json:"tasks"`
}

const generatorSystemPrompt = `You are a home-safety expert creating a task plan for a homeowner.
Respond with a JSON object of the form {"tasks": [...]} and nothing else.
Each task must have: name, description, category, riskCategory, pointsValue (integer 1-10),
frequency (monthly|quarterly|annually|as_needed), verificationType (photo|receipt|document|both),
insuranceRelevance, exampleEvidence (array of strings).`

// Generate returns 8-12 validated candidate templates, or the canonical
// fallback set when the collaborator fails or nothing survives validation.
func (g *Generator) Generate(property *models.Property, recent []models.TaskChecklist) []catalog.Template {
	prompt := buildPrompt(property, recent)

	raw, err := g.Chat([]utils.ChatMessage{{Role: "user", Content: prompt}}, generatorSystemPrompt)
	if err != nil {
		log.Printf("[generator] generation call failed, using fallback: %v", err)
		return catalog.FallbackTemplates()
	}

	var payload generatedPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		log.Printf("[generator] malformed generation response, using fallback: %v", err)
		return catalog.FallbackTemplates()
	}

	valid := make([]catalog.Template, 0, len(payload.Tasks))
	for _, tpl := range payload.Tasks {
		if err := tpl.Validate(); err != nil {
			log.Printf("[generator] dropping candidate %q: %v", tpl.Name, err)
			continue
		}
		valid = append(valid, tpl)
	}
	if len(valid) == 0 {
		log.Printf("[generator] no candidates survived validation, using fallback")
		return catalog.FallbackTemplates()
	}
	return valid
}

func buildPrompt(property *models.Property, recent []models.TaskChecklist) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate 8-12 safety tasks for this property:\n")
	fmt.Fprintf(&b, "Address: %s, %s, %s %s, %s\n", property.Address, property.City, property.State, property.ZipCode, property.Country)
	fmt.Fprintf(&b, "Property type: %s\n", property.PropertyType)
	if len(property.SafetyDevices) > 0 {
		fmt.Fprintf(&b, "Installed safety devices: %s\n", string(property.SafetyDevices))
	}
	if len(property.RiskAssessment) > 0 {
		fmt.Fprintf(&b, "Risk assessment: %s\n", string(property.RiskAssessment))
	}
	fmt.Fprintf(&b, "Allowed categories: %s\n", strings.Join(catalog.CategoryCodes(), ", "))
	fmt.Fprintf(&b, "Allowed risk categories: %s\n", strings.Join(catalog.RiskCategoryCodes(), ", "))

	// Up to the 3 most recent checklists give the model continuity context.
	if len(recent) > 0 {
		fmt.Fprintf(&b, "Recent checklist months:")
		limit := len(recent)
		if limit > 3 {
			limit = 3
		}
		for i := 0; i < limit; i++ {
			fmt.Fprintf(&b, " %s (%s)", recent[i].ChecklistMonth.Format("2006-01"), recent[i].Status)
		}
		fmt.Fprintf(&b, "\n")
	}
	return b.String()
}
