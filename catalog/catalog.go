package catalog

import "strings"

// Frequency is how often a safety task recurs within a plan year.
type Frequency string

const (
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyAnnually  Frequency = "annually"
	FrequencyAsNeeded  Frequency = "as_needed"
)

// VerificationType is the kind of evidence a task accepts.
type VerificationType string

const (
	VerificationPhoto    VerificationType = "photo"
	VerificationReceipt  VerificationType = "receipt"
	VerificationDocument VerificationType = "document"
	VerificationBoth     VerificationType = "both"
)

// Task category codes. These are the only categories the generator may use;
// candidates outside this set are dropped.
const (
	CategoryFireSafety         = "fire_safety"
	CategoryWaterDamage        = "water_damage"
	CategorySecurity           = "security"
	CategoryElectrical         = "electrical"
	CategoryStructural         = "structural"
	CategoryWeatherProtection  = "weather_protection"
	CategoryGeneralMaintenance = "general_maintenance"
)

// Risk category codes used by insurers to bucket tasks.
const (
	RiskFire       = "fire"
	RiskWater      = "water"
	RiskTheft      = "theft"
	RiskLiability  = "liability"
	RiskStructural = "structural"
	RiskWeather    = "weather"
)

const (
	MinPointsValue = 1
	MaxPointsValue = 10
)

// Template is a reusable safety-task description, either a canonical catalog
// entry or a candidate produced by the generation collaborator.
type Template struct {
	Code               string           `json:"code,omitempty"`
	Name               string           `json:"name"`
	Description        string           `json:"description"`
	Category           string           `json:"category"`
	RiskCategory       string           `json:"riskCategory"`
	PointsValue        int              `json:"pointsValue"`
	Frequency          Frequency        `json:"frequency"`
	VerificationType   VerificationType `json:"verificationType"`
	InsuranceRelevance string           `json:"insuranceRelevance,omitempty"`
	ExampleEvidence    []string         `json:"exampleEvidence,omitempty"`
}

var validCategories = map[string]bool{
	CategoryFireSafety:         true,
	CategoryWaterDamage:        true,
	CategorySecurity:           true,
	CategoryElectrical:         true,
	CategoryStructural:         true,
	CategoryWeatherProtection:  true,
	CategoryGeneralMaintenance: true,
}

var validRiskCategories = map[string]bool{
	RiskFire:       true,
	RiskWater:      true,
	RiskTheft:      true,
	RiskLiability:  true,
	RiskStructural: true,
	RiskWeather:    true,
}

var validFrequencies = map[Frequency]bool{
	FrequencyMonthly:   true,
	FrequencyQuarterly: true,
	FrequencyAnnually:  true,
	FrequencyAsNeeded:  true,
}

var validVerificationTypes = map[VerificationType]bool{
	VerificationPhoto:    true,
	VerificationReceipt:  true,
	VerificationDocument: true,
	VerificationBoth:     true,
}

// CategoryCodes returns the closed set of task category codes in stable order.
func CategoryCodes() []string {
	return []string{
		CategoryFireSafety, CategoryWaterDamage, CategorySecurity,
		CategoryElectrical, CategoryStructural, CategoryWeatherProtection,
		CategoryGeneralMaintenance,
	}
}

// RiskCategoryCodes returns the closed set of risk category codes in stable order.
func RiskCategoryCodes() []string {
	return []string{RiskFire, RiskWater, RiskTheft, RiskLiability, RiskStructural, RiskWeather}
}

func IsValidCategory(code string) bool     { return validCategories[code] }
func IsValidRiskCategory(code string) bool { return validRiskCategories[code] }

func IsValidFrequency(f Frequency) bool { return validFrequencies[f] }

func IsValidVerificationType(v VerificationType) bool { return validVerificationTypes[v] }

// Validate checks a template against the fixed rule set. A template failing
// any rule is rejected whole; there is no partial acceptance.
func (t Template) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return ErrMissingName
	}
	if strings.TrimSpace(t.Description) == "" {
		return ErrMissingDescription
	}
	if !IsValidCategory(t.Category) {
		return ErrInvalidCategory
	}
	if !IsValidRiskCategory(t.RiskCategory) {
		return ErrInvalidRiskCategory
	}
	if t.PointsValue < MinPointsValue || t.PointsValue > MaxPointsValue {
		return ErrPointsOutOfRange
	}
	if !IsValidFrequency(t.Frequency) {
		return ErrInvalidFrequency
	}
	if !IsValidVerificationType(t.VerificationType) {
		return ErrInvalidVerificationType
	}
	return nil
}
