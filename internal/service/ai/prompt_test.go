package ai

import (
	"strings"
	"testing"

	"github.com/youthfutures/observatory/internal/model/futures"
)

func testCatalog() futures.Store {
	return futures.NewMemoryStore(futures.SeedPopulations(), futures.SeedScenarios())
}

func TestBuildSystemPromptAllPairs(t *testing.T) {
	catalog := testCatalog()

	for _, pop := range catalog.Populations() {
		for _, sc := range catalog.Scenarios() {
			prompt, ok := BuildSystemPrompt(catalog, pop.ID, sc.ID)
			if !ok {
				t.Fatalf("pair (%s, %s) failed to build", pop.ID, sc.ID)
			}
			if prompt == "" {
				t.Fatalf("pair (%s, %s) built an empty prompt", pop.ID, sc.ID)
			}
			if !strings.Contains(prompt, pop.Name) {
				t.Errorf("prompt for (%s, %s) missing population name %q", pop.ID, sc.ID, pop.Name)
			}
			if !strings.Contains(prompt, sc.Name) {
				t.Errorf("prompt for (%s, %s) missing scenario name %q", pop.ID, sc.ID, sc.Name)
			}
		}
	}
}

func TestBuildSystemPromptDeterministic(t *testing.T) {
	catalog := testCatalog()

	first, ok := BuildSystemPrompt(catalog, "secure-adopters", "drift-economy")
	if !ok {
		t.Fatal("expected valid pair to build")
	}
	second, _ := BuildSystemPrompt(catalog, "secure-adopters", "drift-economy")
	if first != second {
		t.Fatal("same inputs produced different prompts")
	}
}

func TestBuildSystemPromptContent(t *testing.T) {
	catalog := testCatalog()

	prompt, ok := BuildSystemPrompt(catalog, "institutional-sceptics", "the-panic-paradox")
	if !ok {
		t.Fatal("expected valid pair to build")
	}

	for _, fragment := range []string{
		"YOUR IDENTITY:",
		"THE WORLD YOU LIVE IN",
		"Career & education:",
		"Work behaviour:",
		"Mental health:",
		"Political views:",
		"Population context:",
		"RULES:",
		"first person",
		"2-3 short paragraphs",
	} {
		if !strings.Contains(prompt, fragment) {
			t.Errorf("prompt missing %q", fragment)
		}
	}
}

func TestBuildSystemPromptUnknownIDs(t *testing.T) {
	catalog := testCatalog()

	if _, ok := BuildSystemPrompt(catalog, "nope", "drift-economy"); ok {
		t.Fatal("unknown population id should not build")
	}
	if _, ok := BuildSystemPrompt(catalog, "secure-adopters", "nope"); ok {
		t.Fatal("unknown scenario id should not build")
	}
	if _, ok := BuildSystemPrompt(catalog, "", ""); ok {
		t.Fatal("empty ids should not build")
	}
}
