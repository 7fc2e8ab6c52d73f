package futures

// Store exposes read-only access to the reference tables for HTTP handlers
// and the prompt builder.
type Store interface {
	Populations() []Population
	FindPopulation(id string) (Population, bool)
	Scenarios() []Scenario
	FindScenario(id string) (Scenario, bool)
	ScenariosByAxis(axis, value string) []Scenario
	PopulationAffinities(populationID string) []Scenario
}

// MemoryStore implements Store over in-memory slices loaded once at startup.
type MemoryStore struct {
	populations []Population
	scenarios   []Scenario
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied tables.
func NewMemoryStore(populations []Population, scenarios []Scenario) *MemoryStore {
	return &MemoryStore{
		populations: append([]Population(nil), populations...),
		scenarios:   append([]Scenario(nil), scenarios...),
	}
}

// Populations returns the population table in document order.
func (s *MemoryStore) Populations() []Population {
	return append([]Population(nil), s.populations...)
}

// FindPopulation looks up a population by identifier.
func (s *MemoryStore) FindPopulation(id string) (Population, bool) {
	for _, item := range s.populations {
		if item.ID == id {
			return item, true
		}
	}
	return Population{}, false
}

// Scenarios returns the scenario table in document order.
func (s *MemoryStore) Scenarios() []Scenario {
	return append([]Scenario(nil), s.scenarios...)
}

// FindScenario looks up a scenario by identifier.
func (s *MemoryStore) FindScenario(id string) (Scenario, bool) {
	for _, item := range s.scenarios {
		if item.ID == id {
			return item, true
		}
	}
	return Scenario{}, false
}

// ScenariosByAxis returns the scenarios whose named axis holds the given
// value. Unknown axis names return an empty slice.
func (s *MemoryStore) ScenariosByAxis(axis, value string) []Scenario {
	matched := make([]Scenario, 0, len(s.scenarios))
	for _, sc := range s.scenarios {
		var got string
		switch axis {
		case "disruption":
			got = sc.Axes.Disruption
		case "transition":
			got = sc.Axes.Transition
		case "perception":
			got = sc.Axes.Perception
		default:
			return nil
		}
		if got == value {
			matched = append(matched, sc)
		}
	}
	return matched
}

// PopulationAffinities returns the scenarios a population has affinity
// with, in the population's declared order. Unknown ids return nil.
func (s *MemoryStore) PopulationAffinities(populationID string) []Scenario {
	pop, ok := s.FindPopulation(populationID)
	if !ok {
		return nil
	}

	matched := make([]Scenario, 0, len(pop.AffinityScenarios))
	for _, id := range pop.AffinityScenarios {
		if sc, ok := s.FindScenario(id); ok {
			matched = append(matched, sc)
		}
	}
	return matched
}

// RadarTotal sums a scenario's radar dimensions.
func RadarTotal(sc Scenario) float64 {
	var total float64
	for _, score := range sc.RadarScores {
		total += score.Value
	}
	return total
}
