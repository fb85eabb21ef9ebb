package shell_test

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keijioza/chatbot-test/internal/shell"
	"github.com/keijioza/chatbot-test/memory"
)

func quietLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

func TestIsCommand(t *testing.T) {
	assert.True(t, shell.IsCommand("/help"))
	assert.True(t, shell.IsCommand("  /quit"))
	assert.False(t, shell.IsCommand("hello"))
	assert.False(t, shell.IsCommand("calc: 1/2"))
}

func TestDispatch_Help(t *testing.T) {
	d := shell.New(memory.NewRecord(), quietLogger())

	reply, quit := d.Dispatch("/help")
	assert.False(t, quit)
	for _, cmd := range []string{"/help", "/reset", "/save", "/load", "/quit"} {
		assert.Contains(t, reply, cmd)
	}
}

func TestDispatch_Quit(t *testing.T) {
	d := shell.New(memory.NewRecord(), quietLogger())

	reply, quit := d.Dispatch("/quit")
	assert.True(t, quit)
	assert.Equal(t, "Goodbye!", reply)
}

func TestDispatch_CaseInsensitive(t *testing.T) {
	d := shell.New(memory.NewRecord(), quietLogger())

	_, quit := d.Dispatch("/QUIT")
	assert.True(t, quit)
}

func TestDispatch_Reset(t *testing.T) {
	mem := &memory.Record{Name: "Ada", History: []string{"you: hi"}}
	d := shell.New(mem, quietLogger())

	reply, quit := d.Dispatch("/reset")
	assert.False(t, quit)
	assert.Contains(t, reply, "kept your name")
	assert.Equal(t, "Ada", mem.Name)
	assert.Empty(t, mem.History)
}

func TestDispatch_SaveLoad(t *testing.T) {
	p := filepath.Join(t.TempDir(), "mem.json")
	mem := &memory.Record{Name: "Ada", History: []string{"you: hi"}}
	d := shell.New(mem, quietLogger())

	reply, quit := d.Dispatch("/save " + p)
	require.False(t, quit)
	require.Contains(t, reply, "Saved conversation to")

	mem.Name = "Grace"
	reply, _ = d.Dispatch("/load " + p)
	assert.Contains(t, reply, "Loaded conversation from")
	assert.Equal(t, "Ada", mem.Name)
}

func TestDispatch_MissingArgument(t *testing.T) {
	d := shell.New(memory.NewRecord(), quietLogger())

	reply, _ := d.Dispatch("/save")
	assert.Equal(t, "Usage: /save <file>", reply)

	reply, _ = d.Dispatch("/load")
	assert.Equal(t, "Usage: /load <file>", reply)
}

func TestDispatch_FailuresBecomeReplies(t *testing.T) {
	d := shell.New(memory.NewRecord(), quietLogger())

	saveReply, quit := d.Dispatch("/save " + filepath.Join(t.TempDir(), "no-such-dir", "mem.json"))
	assert.False(t, quit)
	assert.True(t, strings.HasPrefix(saveReply, "Couldn't save:"), "got %q", saveReply)

	loadReply, _ := d.Dispatch("/load " + filepath.Join(t.TempDir(), "missing.json"))
	assert.True(t, strings.HasPrefix(loadReply, "Couldn't load:"), "got %q", loadReply)
}

func TestDispatch_Unknown(t *testing.T) {
	d := shell.New(memory.NewRecord(), quietLogger())

	reply, quit := d.Dispatch("/frobnicate")
	assert.False(t, quit)
	assert.Equal(t, "Unknown command. Type /help.", reply)
}
