package futures

// Axis values for the three structural dimensions of the scenario space.
const (
	DisruptionManaged = "managed"
	DisruptionHigh    = "high"

	TransitionWeak   = "weak"
	TransitionStrong = "strong"

	PerceptionDoom   = "doom"
	PerceptionAgency = "agency"
)

// Axes positions a scenario inside the 2x2x2 scenario cube.
type Axes struct {
	Disruption string `json:"disruption"`
	Transition string `json:"transition"`
	Perception string `json:"perception"`
}

// YouthReactions captures how a scenario plays out across four daily-life
// domains for young people.
type YouthReactions struct {
	Career       string `json:"career"`
	Work         string `json:"work"`
	MentalHealth string `json:"mentalHealth"`
	Politics     string `json:"politics"`
}

// RadarScore is one dimension of a scenario's outcome profile, 0..10.
type RadarScore struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Scenario is one of the eight macro-future narratives.
type Scenario struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Tagline           string         `json:"tagline"`
	Color             string         `json:"color"`
	Axes              Axes           `json:"axes"`
	Description       string         `json:"description"`
	YouthReactions    YouthReactions `json:"youthReactions"`
	PopulationProfile string         `json:"populationProfile"`
	EarlyIndicators   string         `json:"earlyIndicators"`
	RadarScores       []RadarScore   `json:"radarScores"`
}

// RadarDimensions lists the shared outcome dimensions in display order.
var RadarDimensions = []string{
	"Economic Prosperity",
	"Social Cohesion",
	"Mental Wellbeing",
	"Political Stability",
	"Innovation Speed",
	"Equity",
}

func radar(values ...float64) []RadarScore {
	scores := make([]RadarScore, len(values))
	for i, v := range values {
		scores[i] = RadarScore{Label: RadarDimensions[i], Value: v}
	}
	return scores
}

// SeedScenarios returns the eight scenarios from the research document.
func SeedScenarios() []Scenario {
	return []Scenario{
		{
			ID:      "co-pilot-commons",
			Name:    "Co-Pilot Commons",
			Tagline: "Managed disruption + Strong transition + Agency narrative",
			Color:   "#14B8A6",
			Axes:    Axes{Disruption: DisruptionManaged, Transition: TransitionStrong, Perception: PerceptionAgency},
			Description: "AI is ubiquitous, but most organizations redesigned entry-level work instead of deleting it. " +
				"Junior roles are \"AI-assisted apprenticeships\" with explicit skill ladders and rotations. " +
				"Public systems fund micro-credentials and paid placements. The Security-Adoption Loop runs in the right direction.",
			YouthReactions: YouthReactions{
				Career: "Less panic-major-switching; more \"AI + domain\" hybrids. " +
					"The 51.2% who value creativity and 48% who value critical thinking find these skills genuinely rewarded.",
				Work: "High mobility is selective (\"I move to learn\"), not frantic. The \"competent distrust\" population thrives.",
				MentalHealth: "Anxiety exists but is metabolized as challenge. Future-orientation capacity is maintained. " +
					"Despair-planning paralysis is prevented by institutional scaffolding.",
				Politics: "Youth pressure aims at improving access and fairness, not stopping AI. " +
					"The 39.5% who want more regulation focus on equity provisions. " +
					"Environmental-tech tension (27.9%) managed through sustainability commitments.",
			},
			PopulationProfile: "Resembles \"Secure + Working\" segment: optimistic about AI (41.1%), engaged with tools " +
				"(25.2% daily use), clear future visions. Asian respondents' pattern is the archetype.",
			EarlyIndicators: "Entry-level postings stabilize with AI tool requirements. Employers publish skill passports. " +
				"AI literacy rises in schools. Security-Adoption Loop shows positive compounding.",
			RadarScores: radar(8, 7, 7, 7, 8, 7),
		},
		{
			ID:      "the-panic-paradox",
			Name:    "The Panic Paradox",
			Tagline: "Managed disruption + Strong transition + Doom narrative",
			Color:   "#8B5CF6",
			Axes:    Axes{Disruption: DisruptionManaged, Transition: TransitionStrong, Perception: PerceptionDoom},
			Description: "Labour market is more resilient than expected, support exists — but young people don't believe it. " +
				"Social feeds amplify \"job-pocalypse\" stories; every layoff framed as AI replacing humans. " +
				"61.3% get AI updates through social media while 17% claim never to use AI (algorithm invisibility) — " +
				"information ecosystem generates doom regardless of ground truth.",
			YouthReactions: YouthReactions{
				Career: "Over-rotation into \"perceived safe\" work. Institutional discouragement " +
					"(18.9% report schools \"strongly discourage\" AI). " +
					"Credential inflation returns — stacking qualifications for psychological safety.",
				Work: "Risk aversion rises. 49.2% are pessimistic despite decent fundamentals. " +
					"Entrepreneurial attempts fall; demand for guaranteed pathways spikes.",
				MentalHealth: "Misinformation (37.1%) outranks job displacement (36.2%) as perceived threat. " +
					"55.7% who believe AI makes people \"think less\" experience cognitive atrophy anxiety.",
				Politics: "Moral panic drives restrictive demands. AI as a voting issue jumps from 7.4% to 11.1% after exposure. " +
					"Mis-targeted regulation attempts proliferate.",
			},
			PopulationProfile: "Resembles \"Students\" segment: information-dense but institutionally constrained. " +
				"52.9% pessimistic despite high engagement. Maps to women respondents.",
			EarlyIndicators: "Surveyed fear rises while aggregate youth employment stays stable. Credential inflation returns. " +
				"High consumption of doom content alongside stable job metrics.",
			RadarScores: radar(6, 5, 4, 5, 6, 6),
		},
		{
			ID:      "diy-advantage",
			Name:    "DIY Advantage",
			Tagline: "Managed disruption + Weak transition + Agency narrative",
			Color:   "#F59E0B",
			Axes:    Axes{Disruption: DisruptionManaged, Transition: TransitionWeak, Perception: PerceptionAgency},
			Description: "Market is okay overall, but support is patchy. " +
				"Those with strong networks and skills turn AI into leverage; others get stuck. " +
				"The Security-Adoption Loop runs without institutional intervention, amplifying existing inequalities. " +
				"The \"moderately insecure\" — the survey's most volatile group — split.",
			YouthReactions: YouthReactions{
				Career: "Self-directed learning explodes. 35.1% already use AI daily while only 32.1% report institutional " +
					"encouragement. Peer and creator-educators fill the gap. \"I am a small firm\" identity spreads.",
				Work: "Portfolio careers normalize for the capable. But gendered: men (41.4% AI-optimistic) more likely to " +
					"pursue this path; women may be structurally disadvantaged.",
				MentalHealth: "Sharply polarized. High efficacy for some, shame and comparison stress for others. " +
					"18.9% expressing hopelessness concentrated among those who fall behind.",
				Politics: "Less faith in institutions; more mutual aid. 79.3% see system as broken but most want reform. " +
					"Pressure for bottom-up solutions.",
			},
			PopulationProfile: "\"Secure + Working\" segment thrives but \"Moderately Insecure\" bifurcates. " +
				"GOP respondents' higher AI adoption may deepen partisan divergence.",
			EarlyIndicators: "Growth of peer-to-peer learning. Rising inequality within Gen Z outcomes. " +
				"Gender gap in AI skill confidence (9.8pp) widens into income gap.",
			RadarScores: radar(6, 4, 5, 5, 8, 3),
		},
		{
			ID:      "drift-economy",
			Name:    "Drift Economy",
			Tagline: "Managed disruption + Weak transition + Doom narrative",
			Color:   "#6366F1",
			Axes:    Axes{Disruption: DisruptionManaged, Transition: TransitionWeak, Perception: PerceptionDoom},
			Description: "Jobs aren't collapsing, but they feel pointless and precarious. " +
				"Algorithmic management spreads, wages lag, institutions offer little clarity. " +
				"\"You're on your own, and the game is rigged.\" " +
				"High-despair respondents believe hiring depends on connections (24.2%) and prestige (22.9%).",
			YouthReactions: YouthReactions{
				Career: "Low commitment to long tracks. 29.7% of high-despair individuals can't form clear five-year " +
					"pictures — long educational investments feel irrational. Short-cycle choices dominate.",
				Work: "Quiet quitting as default. \"Compulsory adoption\" — using AI while resenting it — becomes the " +
					"emotional texture of work. Job-hopping is frequent but not upward.",
				MentalHealth: "Survey predicts 15-25% increase in mental health service demand. Chronic stress, cynicism, " +
					"\"futurelessness\" as a cultural mood. 18.9% expressing hopelessness represents the vanguard.",
				Politics: "Disengagement rises. Not Working population — 14.1% wouldn't vote, 15.7% can't name top issue — " +
					"is the political face. Conspiratorial explanations gain ground. " +
					"\"Moderately insecure\" provide fertile ground for populist appeals.",
			},
			PopulationProfile: "Resembles \"High Despair\" segment: reduced future orientation, lower AI engagement, " +
				"belief system is rigged. Also maps to \"Not Working\" population's multi-domain disconnection. " +
				"Black respondents' paradoxical optimism (30.6% expect future satisfaction) is a counter-current.",
			EarlyIndicators: "High turnover with flat wage progression. Rising \"anti-career\" content. " +
				"Declining trust in universities and employers. 53.4% distrust AI political information.",
			RadarScores: radar(4, 3, 3, 3, 4, 3),
		},
		{
			ID:      "apprenticeship-reboot",
			Name:    "Apprenticeship Reboot",
			Tagline: "High disruption + Strong transition + Agency narrative",
			Color:   "#10B981",
			Axes:    Axes{Disruption: DisruptionHigh, Transition: TransitionStrong, Perception: PerceptionAgency},
			Description: "Entry-level displacement is real and visible: many classic junior tasks are automated. " +
				"But states and employers rebuild the on-ramp through paid apprenticeships, civic service year programs, " +
				"and AI-era vocational pathways. 42% report knowing someone whose job was significantly changed by AI — " +
				"disruption is undeniable but transition architecture provides an answer.",
			YouthReactions: YouthReactions{
				Career: "More pragmatic choices, not despairing. \"Learn fast, rotate often.\" " +
					"Creativity, critical thinking, and empathy valued as AI-resistant skills validated by apprenticeship designs.",
				Work: "High participation in structured programs. 32.1% already report institutional encouragement for AI — " +
					"in this scenario that rises sharply. Willingness to relocate for placements.",
				MentalHealth: "Still anxious, but less hopeless because there's a map and a net. " +
					"Low Despair respondents are 20.5pp more likely to believe employers prioritize skills — " +
					"visible meritocratic structures function as psychological buffers.",
				Politics: "Youth politics focuses on expansion and fairness of new pathways. " +
					"Environmental-tech tension (27.9%) finds constructive outlets through green apprenticeships and " +
					"sustainable AI infrastructure.",
			},
			PopulationProfile: "Aspirational version of \"Working\" segment, with institutional support extending to " +
				"\"Moderately Insecure.\" Skills-first hiring belief becomes self-fulfilling through visible meritocratic pathways.",
			EarlyIndicators: "Large-scale subsidized apprenticeship placements. Hiring shifts from degree screens to skill " +
				"verification. Security-Adoption Loop shows positive compounding even among previously insecure populations.",
			RadarScores: radar(7, 7, 6, 7, 7, 8),
		},
		{
			ID:      "sheltered-stagnation",
			Name:    "Sheltered Stagnation",
			Tagline: "High disruption + Strong transition + Doom narrative",
			Color:   "#F43F5E",
			Axes:    Axes{Disruption: DisruptionHigh, Transition: TransitionStrong, Perception: PerceptionDoom},
			Description: "Support exists, but credibility is low. Young people interpret programs as rationing and " +
				"gatekeeping: \"you must audition for survival.\" High-despair respondents already believe success depends " +
				"on connections (24.2%) and prestige (22.9%). When transition architecture is seen through this lens, " +
				"even good programs feel rigged.",
			YouthReactions: YouthReactions{
				Career: "Compliance behaviour dominates. Credential inflation signal — stacking qualifications for " +
					"psychological safety. 52.9% student pessimism rate suggests this scenario's emotional texture is " +
					"already present in educational settings.",
				Work: "People chase programme slots rather than vocations. Only 36.2% believe employers hire for " +
					"\"most suitable skills\" — while 19% say \"lowest salary\" and 15.7% say \"personal connections.\"",
				MentalHealth: "Performance anxiety rises. Temporal disconnection finding — even those with future " +
					"orientation feel it directed toward anxiety rather than aspiration.",
				Politics: "Protest targets institutions for unfairness while relying on them. " +
					"79.3% who see system as broken but want reform — frustrated reformists — become vocal critics of " +
					"transition programmes they simultaneously depend on.",
			},
			PopulationProfile: "Resembles \"Students\" combined with \"Moderately Insecure\": information-dense, aware of " +
				"both the problem and the programmes, but distrustful of fairness of access. " +
				"\"Compulsory adoption without trust\" extends from AI tools to institutional support.",
			EarlyIndicators: "Explosive growth in applicants per training slot. Allegations of nepotism. " +
				"Higher cheating and credential fraud. \"AI took my future\" becomes a stable political slogan.",
			RadarScores: radar(5, 4, 3, 4, 5, 4),
		},
		{
			ID:      "centaur-underground",
			Name:    "Centaur Underground",
			Tagline: "High disruption + Weak transition + Agency narrative",
			Color:   "#06B6D4",
			Axes:    Axes{Disruption: DisruptionHigh, Transition: TransitionWeak, Perception: PerceptionAgency},
			Description: "Disruption is severe, supports are thin. But a substantial segment learns to use AI as leverage " +
				"and builds micro-enterprises, gig portfolios, and small teams. 35.1% already use AI daily — and the Asian " +
				"respondent pattern of high engagement + high confidence + high risk awareness — is the prototype for this " +
				"scenario's survivors.",
			YouthReactions: YouthReactions{
				Career: "Formal degrees lose power. Only 14.5% view education as a top issue while students are most " +
					"anxious about AI's impact — signals a loss of faith in credentials. Proof-of-work portfolios dominate.",
				Work: "Side hustles become primary; employment becomes episodic. GOP respondents — higher AI use, lower " +
					"regulation preference, higher self-efficacy — may be overrepresented in success stories, deepening " +
					"political-economic sorting.",
				MentalHealth: "Mixed. Security-Adoption Loop means winners compound advantages while losers face burnout. " +
					"9.8pp gender gap in AI skill confidence makes this scenario harder for women.",
				Politics: "Low expectations of government; high experimentation. Decentralized unions and guilds emerge. " +
					"Market for \"human-certified\" services emerges for authenticity.",
			},
			PopulationProfile: "\"Secure + Working + Male + GOP\" intersection is most advantaged. " +
				"Asian respondents' \"digital paradox\" is the psychological ideal. " +
				"But \"Not Working\" population (31.5% never use AI) is structurally excluded.",
			EarlyIndicators: "Explosion in micro-contracting platforms. Rapid growth in AI tool subscriptions. " +
				"Bifurcation between daily AI users and never-users widens into distinct economic classes.",
			RadarScores: radar(5, 3, 4, 4, 9, 2),
		},
		{
			ID:      "the-great-refusal",
			Name:    "The Great Refusal",
			Tagline: "High disruption + Weak transition + Doom narrative",
			Color:   "#EF4444",
			Axes:    Axes{Disruption: DisruptionHigh, Transition: TransitionWeak, Perception: PerceptionDoom},
			Description: "The worst combination. Entry-level paths collapse, safety nets don't catch people, and the " +
				"dominant story is replacement and betrayal. 49.2% are already pessimistic, 55.7% believe AI makes people " +
				"think less, 37.2% view system as fundamentally flawed. The Security-Adoption Loop runs in reverse at scale.",
			YouthReactions: YouthReactions{
				Career: "Mass exit from vulnerable pathways. Migration to trades and physical healthcare " +
					"(29.3% value manual dexterity). Many opt out entirely — \"Not Working\" syndrome becomes a mass phenomenon.",
				Work: "\"Compulsory adoption without trust\" transforms into active refusal. \"Rage-applying,\" sabotage, " +
					"and anti-AI workplace conflict become common. 18.9% expressing hopelessness becomes the emotional " +
					"centre of a political movement.",
				MentalHealth: "Survey predicts 25-30% of this cohort will report clinically significant future-orientation " +
					"deficits by 2030. Elevated hopelessness; spikes in crisis demand. Temporal disconnection — despair as " +
					"collapse of futurity — reaches clinical scale.",
				Politics: "Strong anti-AI movements. \"Moderately insecure\" (48.3% \"fundamentally flawed\") become mass " +
					"base. Environmental-tech collision (27.9%) provides additional mobilization vector. " +
					"Anti-automation parties or ballot initiatives grow.",
			},
			PopulationProfile: "\"High Despair + Not Working + Insecure\" intersection is the core. " +
				"But \"Moderately Insecure\" provides the political energy. " +
				"Women's higher scepticism and care-focused framing may give this movement a gendered character.",
			EarlyIndicators: "Youth unemployment spikes in AI-exposed entry roles. Anti-automation political parties grow. " +
				"Sharp decline in trust across all institutions. 14.1% of Not Working who wouldn't vote becomes much larger share.",
			RadarScores: radar(2, 2, 2, 2, 3, 1),
		},
	}
}
