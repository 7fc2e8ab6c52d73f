package futures

// Population is one of the five youth segments tracked by the research
// data. It doubles as the role-play identity basis for interviews.
type Population struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Risk              string   `json:"risk"`
	AffinityScenarios []string `json:"affinityScenarios"`
	Color             string   `json:"color"`
}

// SeedPopulations returns the five populations from the Youth & AI Futures
// research document. The slice is copied into the store at startup and
// never mutated afterwards.
func SeedPopulations() []Population {
	return []Population{
		{
			ID:   "secure-adopters",
			Name: "Secure Adopters",
			Description: "41.1% AI-optimistic, 25.2% daily use, clear future visions. " +
				"Financially stable, actively engaged with AI tools, and building skills that compound over time.",
			Risk:              "Complacency — may not advocate for systems that support less secure peers, widening gaps.",
			AffinityScenarios: []string{"co-pilot-commons", "diy-advantage", "centaur-underground"},
			Color:             "#14B8A6",
		},
		{
			ID:   "moderately-insecure",
			Name: "Moderately Insecure",
			Description: "48.3% say system \"fundamentally flawed\"; highest cost-of-living concern; knife's-edge. " +
				"This is the largest segment and the one most sensitive to policy and narrative shifts.",
			Risk: "Bifurcation — could split into adapters or refusers depending on which scenario materializes.",
			AffinityScenarios: []string{
				"co-pilot-commons",
				"the-panic-paradox",
				"diy-advantage",
				"drift-economy",
				"apprenticeship-reboot",
				"sheltered-stagnation",
				"centaur-underground",
				"the-great-refusal",
			},
			Color: "#F59E0B",
		},
		{
			ID:   "institutional-sceptics",
			Name: "Institutional Sceptics",
			Description: "Students: 52.9% pessimistic; high info exposure; institutional AI discouragement. " +
				"Deeply embedded in educational institutions that are themselves uncertain about AI.",
			Risk: "Panic Paradox dynamics; credential inflation. " +
				"May over-invest in qualifications for psychological safety rather than skill development.",
			AffinityScenarios: []string{"the-panic-paradox", "sheltered-stagnation"},
			Color:             "#8B5CF6",
		},
		{
			ID:   "disconnected",
			Name: "Disconnected",
			Description: "Not Working: 31.5% never use AI, 14.1% won't vote, multi-domain withdrawal. " +
				"Disengaged from technology, politics, and traditional career pathways simultaneously.",
			Risk: "Permanent opt-out; \"digital peasantry.\" " +
				"Risk of becoming structurally excluded from AI-era economy with no pathway back.",
			AffinityScenarios: []string{"drift-economy", "the-great-refusal"},
			Color:             "#6366F1",
		},
		{
			ID:   "resilient-outsiders",
			Name: "Resilient Outsiders",
			Description: "Black respondents: 30.6% expect future satisfaction despite disadvantage; cultural resilience. " +
				"Maintain hope and forward orientation even in objectively difficult circumstances.",
			Risk: "Resilience masking unmet needs. " +
				"Optimism may prevent accurate assessment of structural barriers and reduce urgency for support.",
			AffinityScenarios: []string{
				"drift-economy",
				"the-panic-paradox",
				"sheltered-stagnation",
				"the-great-refusal",
			},
			Color: "#10B981",
		},
	}
}
