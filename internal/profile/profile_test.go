package profile

import (
	"testing"
	"time"
)

func TestResolvePrecedence(t *testing.T) {
	cases := []struct {
		name string
		sig  Signals
		want string
	}{
		{"default", Signals{}, NameDevelopment},
		{"automation", Signals{Automation: true}, NameAutomated},
		{"production", Signals{Production: true}, NameProduction},
		{"automation beats production", Signals{Automation: true, Production: true}, NameAutomated},
		{"override beats automation", Signals{Override: NameProduction, Automation: true}, NameProduction},
		{"custom override", Signals{Override: "staging", Automation: true}, "staging"},
	}
	for _, c := range cases {
		if got := Resolve(c.sig); got.Name != c.want {
			t.Fatalf("%s: Resolve(%+v).Name = %q, want %q", c.name, c.sig, got.Name, c.want)
		}
	}
}

func TestResolveThresholds(t *testing.T) {
	cases := []struct {
		sig  Signals
		want time.Duration
	}{
		{Signals{}, 60 * time.Second},
		{Signals{Automation: true}, 180 * time.Second},
		{Signals{Production: true}, 600 * time.Second},
		{Signals{Override: "staging"}, 180 * time.Second},
	}
	for _, c := range cases {
		if got := Resolve(c.sig); got.TargetDuration != c.want {
			t.Fatalf("Resolve(%+v).TargetDuration = %v, want %v", c.sig, got.TargetDuration, c.want)
		}
	}
}

func TestResolveCustomCarriesName(t *testing.T) {
	got := Resolve(Signals{Override: "bench"})
	if got.Name != "bench" {
		t.Fatalf("custom override name = %q, want passthrough", got.Name)
	}
	if got.Description == "" || got.MockLevel == "" {
		t.Fatalf("custom profile should still carry descriptive fields: %+v", got)
	}
}

func TestCommentaryLookup(t *testing.T) {
	for _, name := range []string{NameDevelopment, NameAutomated, NameProduction, "anything-else"} {
		if Commentary(name) == "" {
			t.Fatalf("no commentary for %q", name)
		}
	}
}
