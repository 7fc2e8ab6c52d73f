package futures

import "testing"

func newStore() *MemoryStore {
	return NewMemoryStore(SeedPopulations(), SeedScenarios())
}

func TestSeedTableSizes(t *testing.T) {
	s := newStore()
	if got := len(s.Populations()); got != 5 {
		t.Fatalf("expected 5 populations, got %d", got)
	}
	if got := len(s.Scenarios()); got != 8 {
		t.Fatalf("expected 8 scenarios, got %d", got)
	}
}

func TestFindScenario(t *testing.T) {
	s := newStore()

	sc, ok := s.FindScenario("drift-economy")
	if !ok {
		t.Fatal("expected drift-economy to resolve")
	}
	if sc.Name != "Drift Economy" {
		t.Fatalf("unexpected name %q", sc.Name)
	}
	if sc.Axes.Disruption != DisruptionManaged || sc.Axes.Transition != TransitionWeak || sc.Axes.Perception != PerceptionDoom {
		t.Fatalf("unexpected axes %+v", sc.Axes)
	}

	if _, ok := s.FindScenario("no-such-future"); ok {
		t.Fatal("expected unknown scenario id to miss")
	}
}

func TestFindPopulation(t *testing.T) {
	s := newStore()

	pop, ok := s.FindPopulation("disconnected")
	if !ok {
		t.Fatal("expected disconnected to resolve")
	}
	if pop.Name != "Disconnected" {
		t.Fatalf("unexpected name %q", pop.Name)
	}

	if _, ok := s.FindPopulation(""); ok {
		t.Fatal("expected empty id to miss")
	}
}

func TestAffinityScenariosResolve(t *testing.T) {
	s := newStore()

	// Every affinity id declared by a population must exist in the
	// scenario table and come back in declared order.
	for _, pop := range s.Populations() {
		affinities := s.PopulationAffinities(pop.ID)
		if len(affinities) != len(pop.AffinityScenarios) {
			t.Fatalf("population %s: %d affinity ids, %d resolved", pop.ID, len(pop.AffinityScenarios), len(affinities))
		}
		for i, sc := range affinities {
			if sc.ID != pop.AffinityScenarios[i] {
				t.Fatalf("population %s: affinity %d is %s, want %s", pop.ID, i, sc.ID, pop.AffinityScenarios[i])
			}
		}
	}

	if got := s.PopulationAffinities("unknown"); got != nil {
		t.Fatalf("expected nil for unknown population, got %v", got)
	}
}

func TestScenariosByAxis(t *testing.T) {
	s := newStore()

	high := s.ScenariosByAxis("disruption", DisruptionHigh)
	if len(high) != 4 {
		t.Fatalf("expected 4 high-disruption scenarios, got %d", len(high))
	}
	for _, sc := range high {
		if sc.Axes.Disruption != DisruptionHigh {
			t.Fatalf("scenario %s leaked into high-disruption set", sc.ID)
		}
	}

	if got := s.ScenariosByAxis("weather", "stormy"); got != nil {
		t.Fatalf("expected nil for unknown axis, got %v", got)
	}
}

func TestRadarScoresComplete(t *testing.T) {
	s := newStore()
	for _, sc := range s.Scenarios() {
		if len(sc.RadarScores) != len(RadarDimensions) {
			t.Fatalf("scenario %s has %d radar scores", sc.ID, len(sc.RadarScores))
		}
		for i, score := range sc.RadarScores {
			if score.Label != RadarDimensions[i] {
				t.Fatalf("scenario %s: dimension %d is %q", sc.ID, i, score.Label)
			}
			if score.Value < 0 || score.Value > 10 {
				t.Fatalf("scenario %s: %s out of range: %v", sc.ID, score.Label, score.Value)
			}
		}
		if RadarTotal(sc) <= 0 {
			t.Fatalf("scenario %s has non-positive radar total", sc.ID)
		}
	}
}
