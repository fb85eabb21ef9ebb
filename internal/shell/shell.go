// Package shell parses marker-prefixed command lines and dispatches them
// against the fixed command table.
package shell

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/keijioza/chatbot-test/memory"
)

// Marker introduces a command line; anything else is chat.
const Marker = "/"

const helpText = `Commands:
  /help                 Show this help
  /reset                Clear history (keep your name)
  /save <file>          Save memory/history to a JSON file
  /load <file>          Load memory/history from a JSON file
  /quit                 Exit

Tips:
  - Tell me your name (e.g., "my name is Sam").
  - Do quick math: "calc: 2*(3+4)" or "calc sqrt(16)".
  - Ask for a joke or the time/date.`

// Dispatcher routes command lines to the memory record. Command failures
// become apologetic replies, never errors: the loop must not die on a bad
// path.
type Dispatcher struct {
	mem *memory.Record
	log *logrus.Entry
}

func New(mem *memory.Record, log *logrus.Entry) *Dispatcher {
	return &Dispatcher{mem: mem, log: log}
}

// IsCommand reports whether line should be dispatched rather than chatted.
func IsCommand(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), Marker)
}

// Help returns the static usage text.
func Help() string { return helpText }

// Dispatch runs one command line. quit reports that the session should end;
// the command word is case-insensitive.
func (d *Dispatcher) Dispatch(line string) (reply string, quit bool) {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) == 0 {
		return "Unknown command. Type /help.", false
	}
	cmd := strings.ToLower(strings.TrimPrefix(fields[0], Marker))
	arg := ""
	if len(fields) > 1 {
		arg = fields[1]
	}

	switch cmd {
	case "help":
		return Help(), false

	case "reset":
		d.log.Debug("history reset")
		return d.mem.Reset(), false

	case "save":
		if arg == "" {
			return "Usage: /save <file>", false
		}
		msg, err := d.mem.Save(arg)
		if err != nil {
			d.log.WithError(err).Warn("save failed")
			return fmt.Sprintf("Couldn't save: %v", err), false
		}
		d.log.WithField("path", arg).Info("memory saved")
		return msg, false

	case "load":
		if arg == "" {
			return "Usage: /load <file>", false
		}
		msg, err := d.mem.Load(arg)
		if err != nil {
			d.log.WithError(err).Warn("load failed")
			return fmt.Sprintf("Couldn't load: %v", err), false
		}
		d.log.WithField("path", arg).Info("memory loaded")
		return msg, false

	case "quit":
		return "Goodbye!", true

	default:
		return "Unknown command. Type /help.", false
	}
}
