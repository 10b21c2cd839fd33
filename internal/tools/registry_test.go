package tools

import (
	"testing"

	"google.golang.org/adk/tool"

	"agentlab/pkg/errors"
	"agentlab/pkg/logger"
)

func testDeps() Deps {
	return NewDeps(logger.Get(), "vs_test", DefaultUserDirectory())
}

func TestRegistryRegisterAndGet(t *testing.T) {
	reg := NewRegistry()

	weather, err := NewGetWeatherTool(testDeps())
	if err != nil {
		t.Fatalf("NewGetWeatherTool returned error: %v", err)
	}
	reg.Register("get_weather", weather)

	if _, ok := reg.Get("get_weather"); !ok {
		t.Fatal("expected get_weather to be registered")
	}
	if _, ok := reg.Get("missing"); ok {
		t.Fatal("did not expect missing tool to resolve")
	}
}

func TestRegistryResolve(t *testing.T) {
	reg := NewRegistry()
	if err := RegisterAll(reg, testDeps()); err != nil {
		t.Fatalf("RegisterAll returned error: %v", err)
	}

	resolved, err := reg.Resolve([]string{"get_weather", "normalize_date"})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if len(resolved) != 2 {
		t.Fatalf("expected 2 tools, got %d", len(resolved))
	}

	_, err = reg.Resolve([]string{"get_weather", "nope"})
	if !errors.Is(err, errors.ErrToolNotFound) {
		t.Fatalf("expected ErrToolNotFound, got %v", err)
	}
}

func TestRegisterAllMatchesCatalog(t *testing.T) {
	reg := NewRegistry()
	if err := RegisterAll(reg, testDeps()); err != nil {
		t.Fatalf("RegisterAll returned error: %v", err)
	}

	for _, def := range Definitions() {
		if _, ok := reg.Get(def.Name); !ok {
			t.Errorf("catalog tool %s is not registered", def.Name)
		}
	}

	if got, want := len(reg.List()), len(Definitions()); got != want {
		t.Errorf("registered %d tools, catalog has %d", got, want)
	}
}

func TestConstructorsDeclareCatalogNames(t *testing.T) {
	deps := testDeps()

	cases := []struct {
		name  string
		build func(Deps) (tool.Tool, error)
	}{
		{"get_weather", NewGetWeatherTool},
		{"get_available_flights", NewGetAvailableFlightsTool},
		{"check_refund_eligibility", NewCheckRefundEligibilityTool},
		{"normalize_date", NewNormalizeDateTool},
		{"count_words", NewCountWordsTool},
	}

	for _, tc := range cases {
		built, err := tc.build(deps)
		if err != nil {
			t.Fatalf("building %s: %v", tc.name, err)
		}
		if built.Name() != tc.name {
			t.Errorf("tool declares name %q, want %q", built.Name(), tc.name)
		}
		if built.Description() == "" {
			t.Errorf("tool %s has no description", tc.name)
		}
	}
}
