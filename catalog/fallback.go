package catalog

// FallbackTemplates is the canonical template set used whenever the
// generation collaborator fails or returns nothing usable. Onboarding must
// never stall on generation, so these four are always valid per Validate.
func FallbackTemplates() []Template {
	return []Template{
		{
			Code:             "smoke_detector_test",
			Name:             "Test smoke detectors",
			Description:      "Press the test button on every smoke detector in the home and replace batteries in any unit that fails to sound.",
			Category:         CategoryFireSafety,
			RiskCategory:     RiskFire,
			PointsValue:      8,
			Frequency:        FrequencyMonthly,
			VerificationType: VerificationPhoto,
			InsuranceRelevance: "Working smoke detectors are the single largest factor in limiting fire-loss claims.",
			ExampleEvidence:  []string{"Photo of a detector with its test light on", "Photo of fresh batteries installed"},
		},
		{
			Code:             "plumbing_leak_inspection",
			Name:             "Inspect plumbing for leaks",
			Description:      "Check under sinks, around the water heater, and at visible supply lines for drips, corrosion, or pooled water.",
			Category:         CategoryWaterDamage,
			RiskCategory:     RiskWater,
			PointsValue:      6,
			Frequency:        FrequencyQuarterly,
			VerificationType: VerificationPhoto,
			InsuranceRelevance: "Early leak detection prevents the gradual water damage most policies exclude.",
			ExampleEvidence:  []string{"Photo of dry under-sink cabinet", "Photo of water heater connections"},
		},
		{
			Code:             "deadbolt_check",
			Name:             "Check exterior door deadbolts",
			Description:      "Confirm every exterior door has a functioning deadbolt that throws fully into the strike plate.",
			Category:         CategorySecurity,
			RiskCategory:     RiskTheft,
			PointsValue:      5,
			Frequency:        FrequencyQuarterly,
			VerificationType: VerificationPhoto,
			InsuranceRelevance: "Deadbolts on all exterior doors are a common requirement for theft-coverage discounts.",
			ExampleEvidence:  []string{"Photo of an engaged deadbolt", "Photo of the strike plate"},
		},
		{
			Code:             "co_detector_test",
			Name:             "Test carbon monoxide detectors",
			Description:      "Test every CO detector and verify none is past its printed expiration date.",
			Category:         CategoryFireSafety,
			RiskCategory:     RiskLiability,
			PointsValue:      8,
			Frequency:        FrequencyMonthly,
			VerificationType: VerificationPhoto,
			InsuranceRelevance: "CO detectors reduce liability exposure for occupant injury claims.",
			ExampleEvidence:  []string{"Photo of the detector's test indicator", "Photo of the expiration date label"},
		},
	}
}
