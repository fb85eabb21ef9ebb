package rules

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/keijioza/chatbot-test/internal/eval"
)

// Keyword sets match on word boundaries so "hi" does not fire inside "this".
var (
	namePattern = regexp.MustCompile(`(?i)\bmy\s+name\s+is\s+([A-Za-z][A-Za-z\-'\s]{0,30})`)
	greetWords  = regexp.MustCompile(`\b(hello|hi|hey)\b`)
	thanksWords = regexp.MustCompile(`\b(thanks?|ty)\b`)
	byeWords    = regexp.MustCompile(`\b(bye|goodbye|quit|exit)\b`)
	timeWords   = regexp.MustCompile(`\b(time|date)\b`)
	jokeWords   = regexp.MustCompile(`\bjokes?\b`)
	sadWords    = regexp.MustCompile(`\b(sad|down|tired|stressed)\b`)
	gladWords   = regexp.MustCompile(`\b(great|awesome|happy|good)\b`)
)

var titleCaser = cases.Title(language.English)

func learnName(ctx *Context) (string, bool) {
	m := namePattern.FindStringSubmatch(ctx.Text)
	if m == nil {
		return "", false
	}
	name := titleCaser.String(strings.TrimSpace(m[1]))
	ctx.Mem.Name = name
	return fmt.Sprintf("Nice to meet you, %s! 👋", name), true
}

func greeting(ctx *Context) (string, bool) {
	if !greetWords.MatchString(ctx.Low) {
		return "", false
	}
	who := ""
	if ctx.Mem.Name != "" {
		who = " " + ctx.Mem.Name
	}
	return fmt.Sprintf("Hey%s! I'm 🤖 — ask me stuff or type /help.", who), true
}

func thanks(ctx *Context) (string, bool) {
	if !thanksWords.MatchString(ctx.Low) {
		return "", false
	}
	return "You're welcome!", true
}

func farewell(ctx *Context) (string, bool) {
	if !byeWords.MatchString(ctx.Low) {
		return "", false
	}
	return "Bye! Type /quit to leave the program.", true
}

func timeOfDay(ctx *Context) (string, bool) {
	if !timeWords.MatchString(ctx.Low) {
		return "", false
	}
	return fmt.Sprintf("It's %s.", ctx.Now().Format("2006-01-02 15:04")), true
}

var jokes = []string{
	"Why did the developer go broke? Because they used up all their cache.",
	"I would tell you a UDP joke, but you might not get it.",
	"Debugging: being the detective in a crime movie where you are also the murderer.",
}

func joke(ctx *Context) (string, bool) {
	if !jokeWords.MatchString(ctx.Low) {
		return "", false
	}
	return jokes[ctx.Rand.Intn(len(jokes))], true
}

// calculator claims "calc: <expr>" and "calc <expr>".
func calculator(ctx *Context) (string, bool) {
	var expr string
	switch {
	case strings.HasPrefix(ctx.Low, "calc:"):
		expr = ctx.Text[len("calc:"):]
	case strings.HasPrefix(ctx.Low, "calc "):
		expr = ctx.Text[len("calc "):]
	default:
		return "", false
	}
	expr = strings.TrimSpace(expr)
	v, err := eval.Evaluate(expr)
	if err != nil {
		return fmt.Sprintf("I couldn't compute that: %v", err), true
	}
	return fmt.Sprintf("%s = %s", expr, strconv.FormatFloat(v, 'g', -1, 64)), true
}

// facts is deliberately a slice, not a map: the first matching topic in
// declaration order wins, every run.
var facts = []struct {
	topic  string
	answer string
}{
	{"python", "Python is a popular programming language known for readability and versatility."},
	{"openai", "OpenAI researches and builds safe, useful AI systems."},
	{"manila", "Manila is the capital of the Philippines."},
	{"planet", "There are eight planets in our Solar System."},
}

func fact(ctx *Context) (string, bool) {
	for _, f := range facts {
		if strings.Contains(ctx.Low, f.topic) {
			return f.answer, true
		}
	}
	return "", false
}

// sentiment checks the negative set before the positive one, so mixed
// messages get the empathetic reply.
func sentiment(ctx *Context) (string, bool) {
	name := ctx.Mem.Name
	if sadWords.MatchString(ctx.Low) {
		if name != "" {
			return fmt.Sprintf("Sorry you're feeling that way, %s. I'm here to listen. 🙁", name), true
		}
		return "Sorry you're feeling that way. I'm here to listen. 🙁", true
	}
	if gladWords.MatchString(ctx.Low) {
		if name != "" {
			return fmt.Sprintf("Love to hear that, %s! 🙂", name), true
		}
		return "Love to hear that! 🙂", true
	}
	return "", false
}

const fallbackReply = "I didn't quite get that. Try /help or say 'joke', 'time', or 'calc: 2*(3+4)'."

func fallback(*Context) (string, bool) {
	return fallbackReply, true
}
