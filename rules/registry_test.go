package rules_test

import (
	"testing"

	"github.com/keijioza/chatbot-test/rules"
)

// The chain contract is first-match-wins, so both membership and order are
// load-bearing.
func TestRegistry_RuleOrder(t *testing.T) {
	want := []string{
		"name",
		"greeting",
		"thanks",
		"farewell",
		"time",
		"joke",
		"calc",
		"fact",
		"sentiment",
		"fallback",
	}

	defs := rules.Registry()
	if len(defs) != len(want) {
		t.Fatalf("unexpected number of rules: got %d want %d", len(defs), len(want))
	}
	for i, name := range want {
		if defs[i].Name != name {
			t.Fatalf("rule %d: got %q want %q", i, defs[i].Name, name)
		}
	}
}

func TestRegistry_HandlersNonNil(t *testing.T) {
	for _, r := range rules.Registry() {
		if r.Handle == nil {
			t.Fatalf("rule %q has no handler", r.Name)
		}
	}
}
