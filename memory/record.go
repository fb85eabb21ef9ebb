package memory

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// ErrFormat reports a memory file that is not a valid serialized record.
var ErrFormat = errors.New("malformed memory file")

// Record is the in-process memory: the learned user name and the running
// transcript. Name survives Reset; History does not.
type Record struct {
	Name    string   `json:"name,omitempty"`
	History []string `json:"history"`
}

func NewRecord() *Record {
	return &Record{History: []string{}}
}

// Save writes the record to path and returns a user-facing confirmation.
func (r *Record) Save(path string) (string, error) {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "encode memory")
	}
	if err := writeFileAtomic(path, append(b, '\n')); err != nil {
		return "", errors.Wrap(err, "write memory file")
	}
	return fmt.Sprintf("Saved conversation to %s", path), nil
}

// Load replaces the record wholesale with the contents of path. On any
// failure the in-memory record is left untouched.
func (r *Record) Load(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(err, "read memory file")
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	var loaded Record
	if err := dec.Decode(&loaded); err != nil {
		return "", errors.Wrapf(ErrFormat, "%s: %v", path, err)
	}
	if loaded.History == nil {
		loaded.History = []string{}
	}
	*r = loaded
	return fmt.Sprintf("Loaded conversation from %s", path), nil
}

// Reset clears the transcript but keeps the learned name.
func (r *Record) Reset() string {
	r.History = []string{}
	return "Okay, I cleared the chat history but kept your name."
}

// AppendTurn records one exchange, trimming the transcript to the newest
// limit entries. limit <= 0 keeps everything.
func (r *Record) AppendTurn(user, reply string, limit int) {
	r.History = append(r.History, "you: "+user, "bot: "+reply)
	if limit > 0 && len(r.History) > limit {
		r.History = append([]string{}, r.History[len(r.History)-limit:]...)
	}
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()
	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
