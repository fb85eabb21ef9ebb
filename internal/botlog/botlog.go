// Package botlog builds the session-scoped diagnostic logger.
//
// Diagnostics go to stderr so the chat transcript on stdout stays clean.
// Every entry carries a session id for correlating lines from one run.
package botlog

import (
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// New returns a logger entry tagged with a fresh session id. Unknown level
// names fall back to warn.
func New(level string) *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.WarnLevel
	}
	logger.SetLevel(lvl)

	return logger.WithField("session", uuid.NewString())
}
