package rules

import (
	"math/rand"
	"strings"
	"time"

	"github.com/keijioza/chatbot-test/memory"
)

// Responder runs the rule chain. The clock and RNG are injectable so the
// time and joke rules stay testable.
type Responder struct {
	rules []Rule
	now   func() time.Time
	rng   *rand.Rand
}

type Option func(*Responder)

// WithClock overrides the time source used by the time rule.
func WithClock(now func() time.Time) Option {
	return func(r *Responder) { r.now = now }
}

// WithRand overrides the RNG used by the joke rule.
func WithRand(rng *rand.Rand) Option {
	return func(r *Responder) { r.rng = rng }
}

func New(opts ...Option) *Responder {
	r := &Responder{
		rules: Registry(),
		now:   time.Now,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Respond maps text to a reply. It never fails: empty input gets a prompt to
// say something, and the fallback rule claims anything unmatched. The name
// rule may set mem.Name as a side effect.
func (r *Responder) Respond(text string, mem *memory.Record) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return "Say something and I'll reply!"
	}
	ctx := &Context{
		Text: text,
		Low:  strings.ToLower(text),
		Mem:  mem,
		Now:  r.now,
		Rand: r.rng,
	}
	for _, rule := range r.rules {
		if reply, ok := rule.Handle(ctx); ok {
			return reply
		}
	}
	// Unreachable while the fallback rule is registered last.
	return fallbackReply
}
