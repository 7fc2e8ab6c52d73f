package futures

// Axis describes one structural dimension of the scenario cube.
type Axis struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Low         string `json:"low"`
	High        string `json:"high"`
	Description string `json:"description"`
}

// PestleFinding is one headline finding inside a PESTLE category.
type PestleFinding struct {
	Headline string `json:"headline"`
	Detail   string `json:"detail"`
	Stat     string `json:"stat,omitempty"`
}

// PestleCategory groups research findings under one PESTLE letter.
type PestleCategory struct {
	ID       string          `json:"id"`
	Label    string          `json:"label"`
	Letter   string          `json:"letter"`
	Color    string          `json:"color"`
	Findings []PestleFinding `json:"findings"`
}

// PolicyImplication is one numbered policy recommendation.
type PolicyImplication struct {
	ID     string `json:"id"`
	Number int    `json:"number"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// SurveyFinding is one cross-cutting result from the survey.
type SurveyFinding struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// SeedAxes returns the three scenario axes.
func SeedAxes() []Axis {
	return []Axis{
		{
			ID:    "disruption",
			Label: "Axis A: Entry-Level Disruption",
			Low:   "Managed",
			High:  "High",
			Description: "The degree to which AI automates and displaces traditional entry-level roles. " +
				"Managed means organizations redesign rather than delete junior positions; " +
				"High means visible, large-scale elimination of classic on-ramps.",
		},
		{
			ID:    "transition",
			Label: "Axis B: Transition Architecture",
			Low:   "Weak",
			High:  "Strong",
			Description: "The strength of institutional support systems — apprenticeships, retraining programmes, " +
				"micro-credentials, career counselling — that help young people navigate the changing labour market.",
		},
		{
			ID:    "perception",
			Label: "Axis C: Perception Climate",
			Low:   "Doom",
			High:  "Agency",
			Description: "The dominant narrative young people absorb about AI and their future. " +
				"Agency means people feel empowered to adapt and shape outcomes; " +
				"Doom means the prevailing story is replacement, helplessness, and betrayal.",
		},
	}
}

// SeedPestle returns the PESTLE analysis categories.
func SeedPestle() []PestleCategory {
	return []PestleCategory{
		{
			ID: "political", Label: "Political", Letter: "P", Color: "#EF4444",
			Findings: []PestleFinding{
				{
					Headline: "Cost of living crowds out AI governance",
					Detail: "48.2% cite cost of living as top voting issue vs 7.4% for AI (rises to 11.1% after priming). " +
						"AI governance struggles to compete for political attention against immediate economic pressures.",
					Stat: "48.2% vs 7.4%",
				},
				{
					Headline: "Partisan AI positioning",
					Detail: "GOP shows 14.1pp higher daily AI use than Independents; Democrats stronger calls for regulation " +
						"(25.7% vs 13% say government does \"far too little\"). " +
						"AI adoption and governance attitudes are splitting along partisan lines.",
					Stat: "14.1pp gap",
				},
				{
					Headline: "\"Moderately insecure\" as most volatile group",
					Detail: "48.3% view economic system as \"fundamentally flawed.\" This is the largest persuadable bloc " +
						"and the most likely to shift political allegiance based on AI-related economic outcomes.",
					Stat: "48.3%",
				},
			},
		},
		{
			ID: "economic", Label: "Economic", Letter: "E", Color: "#F59E0B",
			Findings: []PestleFinding{
				{
					Headline: "Security-Adoption Loop",
					Detail: "Financial security drives AI adoption, which drives skill development, which drives further " +
						"security — and the reverse. This feedback loop is the single most important structural dynamic in the data.",
				},
				{
					Headline: "Entry-level contraction",
					Detail: "21.5% already expect fewer entry-level opportunities; possible 20-35% contraction by 2034; " +
						"41.6% know someone affected by AI. The traditional on-ramp into professional careers is narrowing.",
					Stat: "20-35% contraction by 2034",
				},
				{
					Headline: "Scarcity orientation",
					Detail: "Only 36.5% are optimistic about AI's impact; defensive psychology dominates. " +
						"Young people are making career choices from a posture of protection rather than aspiration.",
					Stat: "36.5% optimistic",
				},
			},
		},
		{
			ID: "social", Label: "Social", Letter: "S", Color: "#8B5CF6",
			Findings: []PestleFinding{
				{
					Headline: "Despair as tax on agency",
					Detail: "High-despair have 8.8% \"very able\" vs 22.4% low-despair for AI skills; believe hiring depends " +
						"on connections. Despair does not just reflect pessimism — it actively reduces the capacity to act.",
					Stat: "8.8% vs 22.4%",
				},
				{
					Headline: "18.9% express hopelessness",
					Detail: "18.9% express hopelessness in open-ended responses (second after cost of living at 37%). " +
						"This is not survey fatigue — it is a deeply felt emotional state that shapes all other responses.",
					Stat: "18.9%",
				},
				{
					Headline: "Gendered futures",
					Detail: "Men 41.4% vs 31.6% optimistic; women prioritize healthcare and express greater environmental " +
						"concern. The AI transition is experienced differently by gender in ways that will shape both labour " +
						"markets and politics.",
					Stat: "41.4% vs 31.6%",
				},
			},
		},
		{
			ID: "technological", Label: "Technological", Letter: "T", Color: "#06B6D4",
			Findings: []PestleFinding{
				{
					Headline: "Algorithm invisibility",
					Detail: "61.3% encounter AI through social media, 17% claim never to use AI. Most young people interact " +
						"with AI systems daily without recognizing them as AI, creating a gap between perceived and actual exposure.",
					Stat: "61.3% via social media",
				},
				{
					Headline: "Institutional discouragement backfires",
					Detail: "Under-21s face more discouragement (18.8% \"strongly discourages\" vs 10.7% over-21) and are " +
						"more pessimistic (54% vs 47%). Restricting AI in educational settings correlates with worse, " +
						"not better, outcomes.",
					Stat: "18.8% vs 10.7%",
				},
				{
					Headline: "Human skills as counter-narrative",
					Detail: "Creativity (51.2%), critical thinking (48%), empathy (44.8%) identified as what matters most. " +
						"Young people are converging on a shared understanding of which human capabilities remain valuable.",
					Stat: "51.2% creativity",
				},
			},
		},
		{
			ID: "legal", Label: "Legal", Letter: "L", Color: "#10B981",
			Findings: []PestleFinding{
				{
					Headline: "Regulation demand concentrated but growing",
					Detail: "39.5% say government does too little; strongest from insecure (28.8% \"far too little\") and " +
						"Democratic respondents. Demand for AI regulation is not uniform — it is driven by economic " +
						"vulnerability and political identity.",
					Stat: "39.5%",
				},
				{
					Headline: "Direct exposure increases regulation appetite",
					Detail: "Direct exposure to AI job change increases regulation appetite. Those who have personally " +
						"experienced or witnessed AI-driven job changes are significantly more likely to support stronger " +
						"government intervention.",
				},
			},
		},
		{
			ID: "environmental", Label: "Environmental", Letter: "E", Color: "#22C55E",
			Findings: []PestleFinding{
				{
					Headline: "Environmental-tech collision",
					Detail: "27.9% cite environmental impact as top AI threat; highest among Democrats (33.9%) and women " +
						"(32.1%). AI's energy footprint is becoming a mobilization issue, especially for climate-concerned youth.",
					Stat: "27.9%",
				},
				{
					Headline: "Youth climate activists targeting AI infrastructure",
					Detail: "Suggests youth climate activists targeting data centres and energy consumption. " +
						"The environmental movement and tech scepticism are converging into a single critique with " +
						"political implications.",
				},
			},
		},
	}
}

// SeedPolicyImplications returns the five policy recommendations.
func SeedPolicyImplications() []PolicyImplication {
	return []PolicyImplication{
		{
			ID: "break-loop", Number: 1, Title: "Break the Security-Adoption Loop early",
			Detail: "Universal AI literacy programmes free and decoupled from employment. The feedback loop between " +
				"financial security and AI adoption must be interrupted at its weakest link — access to learning — " +
				"before it compounds into permanent stratification.",
		},
		{
			ID: "rebuild-future-orientation", Number: 2, Title: "Rebuild future-orientation capacity",
			Detail: "Career counselling, mentoring, structured planning support. Despair is not just pessimism but a " +
				"collapse of the ability to imagine and plan for the future. Restoring this capacity requires active " +
				"intervention, not just information.",
		},
		{
			ID: "target-moderately-insecure", Number: 3, Title: "Target the moderately insecure",
			Detail: "Visible pathways, co-investment models, skills-first hiring norms. This is the largest and most " +
				"persuadable segment. Where they land determines which scenario dominates — they are the swing population " +
				"of the AI transition.",
		},
		{
			ID: "fix-information-ecosystem", Number: 4, Title: "Fix the information ecosystem",
			Detail: "AI literacy must include algorithmic understanding, not just generative tools. When 61.3% encounter " +
				"AI through social media and 17% deny using it at all, the information environment itself becomes a policy " +
				"problem that shapes all other outcomes.",
		},
		{
			ID: "reconnect-disconnected", Number: 5, Title: "Reconnect the disconnected",
			Detail: "Service years, community learning centres, mentoring programmes. The \"Not Working\" population " +
				"represents multi-domain withdrawal that standard employment programmes cannot reach. " +
				"Reconnection requires meeting people where they are.",
		},
	}
}

// SeedSurveyFindings returns the cross-cutting survey findings.
func SeedSurveyFindings() []SurveyFinding {
	return []SurveyFinding{
		{
			ID: "financial-security-master-variable", Title: "Financial security as master variable",
			Detail: "Financial security is the single strongest predictor of AI attitudes, adoption, skill development, " +
				"and future orientation. It operates as a gateway variable that enables or constrains every other " +
				"dimension of the AI transition.",
		},
		{
			ID: "despair-temporal-disconnection", Title: "Despair as temporal disconnection",
			Detail: "Despair is not merely pessimism — it is a collapse of the capacity to orient toward the future. " +
				"High-despair respondents cannot form five-year plans, do not believe in meritocratic hiring, and withdraw " +
				"from skill-building. This is a distinct psychological syndrome, not just a negative attitude.",
		},
		{
			ID: "epistemic-fear-outranks-job-loss", Title: "Epistemic fear outranks job loss",
			Detail: "Misinformation (37.1%) outranks job displacement (36.2%) as the perceived top AI threat. " +
				"Young people are more afraid of not being able to trust what they know than of losing their jobs. " +
				"This inverts the standard policy framing.",
		},
		{
			ID: "compulsory-adoption-without-trust", Title: "Compulsory adoption without trust",
			Detail: "56.6% use AI weekly while 49.2% are pessimistic about its impact. Young people are using AI not " +
				"because they believe in it but because they feel they have no choice. This creates a psychologically " +
				"corrosive dynamic of compliance without consent.",
		},
		{
			ID: "not-working-distinct-syndrome", Title: "\"Not Working\" population as distinct syndrome",
			Detail: "The \"Not Working\" segment (31.5% never use AI, 14.1% would not vote, 15.7% cannot name a top issue) " +
				"represents multi-domain withdrawal — from technology, politics, and civic life simultaneously. " +
				"This is not unemployment; it is a distinct social syndrome requiring integrated responses.",
		},
	}
}
