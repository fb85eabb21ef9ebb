package rules

import (
	"math/rand"
	"time"

	"github.com/keijioza/chatbot-test/memory"
)

// Context is what a rule sees for one incoming message.
type Context struct {
	Text string // trimmed raw input
	Low  string // lowercased Text, for matching
	Mem  *memory.Record
	Now  func() time.Time
	Rand *rand.Rand
}

// Rule pairs a name with a handler. A handler returns its reply and whether
// it claimed the message; the chain stops at the first claim.
type Rule struct {
	Name   string
	Handle func(*Context) (string, bool)
}

// Registry returns the rule chain in priority order. Order is the contract:
// name learning runs before greetings, sentiment runs after facts, and the
// fallback claims whatever is left.
func Registry() []Rule {
	return []Rule{
		{Name: "name", Handle: learnName},
		{Name: "greeting", Handle: greeting},
		{Name: "thanks", Handle: thanks},
		{Name: "farewell", Handle: farewell},
		{Name: "time", Handle: timeOfDay},
		{Name: "joke", Handle: joke},
		{Name: "calc", Handle: calculator},
		{Name: "fact", Handle: fact},
		{Name: "sentiment", Handle: sentiment},
		{Name: "fallback", Handle: fallback},
	}
}
