package output

// BuildSchoolJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing the canonical output shape. It is used locally
// to validate assembled records before they are written.
func BuildSchoolJSONSchema() map[string]any {
	band := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"p25": countProp(),
			"p50": countProp(),
			"p75": countProp(),
		},
		"required": []string{"p25", "p50", "p75"},
	}
	earlyRound := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"applied":  countProp(),
			"admitted": countProp(),
		},
		"required": []string{"applied", "admitted"},
	}
	record := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"admissions": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"applied":        countProp(),
					"admitted":       countProp(),
					"enrolled":       countProp(),
					"acceptanceRate": rateProp(),
					"yield":          rateProp(),
					"earlyDecision":  earlyRound,
					"earlyAction":    earlyRound,
				},
				"required": []string{"applied", "admitted", "enrolled", "acceptanceRate", "yield"},
			},
			"testScores": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"sat": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"composite":      band,
							"readingWriting": band,
							"math":           band,
							"submissionRate": rateProp(),
						},
					},
					"act": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"composite":      band,
							"submissionRate": rateProp(),
						},
					},
				},
			},
			"demographics": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"enrollment": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"total":         countProp(),
							"undergraduate": countProp(),
							"graduate":      countProp(),
						},
					},
					"byRace": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"international":                 countProp(),
							"hispanicLatino":                countProp(),
							"blackAfricanAmerican":          countProp(),
							"white":                         countProp(),
							"asian":                         countProp(),
							"americanIndianAlaskaNative":    countProp(),
							"nativeHawaiianPacificIslander": countProp(),
							"twoOrMoreRaces":                countProp(),
							"unknown":                       countProp(),
						},
					},
					"byResidency": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"inState":       countProp(),
							"outOfState":    countProp(),
							"international": countProp(),
						},
					},
				},
			},
			"costs": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"tuition":      countProp(),
					"fees":         countProp(),
					"roomAndBoard": countProp(),
					"totalCOA":     countProp(),
				},
			},
			"financialAid": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"percentReceivingAid":   rateProp(),
					"averageAidPackage":     countProp(),
					"averageNeedBasedGrant": countProp(),
					"percentNeedFullyMet":   rateProp(),
				},
			},
		},
		"required": []string{"admissions", "testScores", "demographics", "costs", "financialAid"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name": map[string]any{"type": "string", "minLength": 1},
			"slug": map[string]any{"type": "string", "minLength": 1},
			"years": map[string]any{
				"type":                 "object",
				"additionalProperties": record,
			},
		},
		"required": []string{"name", "slug", "years"},
	}
}

func countProp() map[string]any {
	return map[string]any{"type": "integer", "minimum": 0}
}

// rateProp admits the documented >1 edge of the percentage heuristic
// (a "105%" source token) rather than silently rejecting the record;
// downstream consumers see exactly what was parsed.
func rateProp() map[string]any {
	return map[string]any{"type": "number", "minimum": 0.0}
}
