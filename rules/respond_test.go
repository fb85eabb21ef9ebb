package rules_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keijioza/chatbot-test/memory"
	"github.com/keijioza/chatbot-test/rules"
)

func fixedClock(t *testing.T) func() time.Time {
	t.Helper()
	at := time.Date(2026, 8, 28, 12, 34, 56, 0, time.Local)
	return func() time.Time { return at }
}

func TestRespond_NameRoundTrip(t *testing.T) {
	mem := memory.NewRecord()
	bot := rules.New()

	reply := bot.Respond("my name is Ada", mem)
	assert.Equal(t, "Ada", mem.Name)
	assert.Contains(t, reply, "Ada")

	// A later greeting is personalized with the stored name.
	greeting := bot.Respond("hello there", mem)
	assert.Contains(t, greeting, "Ada")
}

func TestRespond_NameTitleCased(t *testing.T) {
	mem := memory.NewRecord()
	bot := rules.New()

	bot.Respond("My Name Is ada lovelace", mem)
	assert.Equal(t, "Ada Lovelace", mem.Name)
}

func TestRespond_GreetingWithoutName(t *testing.T) {
	mem := memory.NewRecord()
	bot := rules.New()

	reply := bot.Respond("hi", mem)
	assert.Contains(t, reply, "Hey!")
	assert.Empty(t, mem.Name)
}

func TestRespond_FixedReplies(t *testing.T) {
	mem := memory.NewRecord()
	bot := rules.New()

	assert.Equal(t, "You're welcome!", bot.Respond("thanks a lot", mem))
	assert.Equal(t, "Bye! Type /quit to leave the program.", bot.Respond("goodbye", mem))
}

func TestRespond_Time(t *testing.T) {
	mem := memory.NewRecord()
	bot := rules.New(rules.WithClock(fixedClock(t)))

	assert.Equal(t, "It's 2026-08-28 12:34.", bot.Respond("what time is it", mem))
	assert.Equal(t, "It's 2026-08-28 12:34.", bot.Respond("today's date please", mem))
}

func TestRespond_JokeFromFixedList(t *testing.T) {
	mem := memory.NewRecord()
	bot := rules.New(rules.WithRand(rand.New(rand.NewSource(1))))

	known := []string{
		"Why did the developer go broke? Because they used up all their cache.",
		"I would tell you a UDP joke, but you might not get it.",
		"Debugging: being the detective in a crime movie where you are also the murderer.",
	}
	for i := 0; i < 10; i++ {
		assert.Contains(t, known, bot.Respond("tell me a joke", mem))
	}
}

func TestRespond_Calculator(t *testing.T) {
	mem := memory.NewRecord()
	bot := rules.New()

	assert.Equal(t, "2*(3+4) = 14", bot.Respond("calc: 2*(3+4)", mem))
	assert.Equal(t, "sqrt(16) = 4", bot.Respond("calc sqrt(16)", mem))
	assert.Equal(t, "2**10 = 1024", bot.Respond("CALC: 2**10", mem))

	failure := bot.Respond("calc: 1/0", mem)
	assert.Contains(t, failure, "I couldn't compute that")
	assert.Contains(t, failure, "division by zero")
}

func TestRespond_Facts(t *testing.T) {
	mem := memory.NewRecord()
	bot := rules.New()

	assert.Equal(t,
		"Manila is the capital of the Philippines.",
		bot.Respond("tell me about manila", mem))

	// Two topics in one message: declaration order breaks the tie.
	assert.Equal(t,
		"Python is a popular programming language known for readability and versatility.",
		bot.Respond("is python used in manila", mem))
}

func TestRespond_Sentiment(t *testing.T) {
	mem := memory.NewRecord()
	bot := rules.New()

	require.Contains(t, bot.Respond("I'm feeling sad", mem), "here to listen")
	require.Contains(t, bot.Respond("today was awesome", mem), "Love to hear that")

	// Negative set wins over positive when both match.
	assert.Contains(t, bot.Respond("good but mostly stressed", mem), "here to listen")

	mem.Name = "Ada"
	assert.Contains(t, bot.Respond("I'm feeling sad", mem), "Ada")
}

func TestRespond_Fallback(t *testing.T) {
	mem := memory.NewRecord()
	bot := rules.New()

	want := "I didn't quite get that. Try /help or say 'joke', 'time', or 'calc: 2*(3+4)'."
	assert.Equal(t, want, bot.Respond("asdfqwerty", mem))
}

func TestRespond_EmptyInput(t *testing.T) {
	mem := memory.NewRecord()
	bot := rules.New()

	assert.Equal(t, "Say something and I'll reply!", bot.Respond("   ", mem))
}

func TestRespond_KeywordsMatchWholeWords(t *testing.T) {
	mem := memory.NewRecord()
	bot := rules.New()

	// "this" must not trigger the greeting rule via the "hi" substring.
	reply := bot.Respond("this makes no sense whatsoever", mem)
	assert.NotContains(t, reply, "Hey")
}
