// Package state persists the small JSON ledger kctx keeps between runs,
// currently just the previously active context. Loading is fail-soft: a
// missing or mangled file reads as empty state. Writes go through a temp
// file and rename. There is no cross-process locking; concurrent kctx
// invocations race and the last writer wins.
package state

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"kctx-cli/internal/config"
)

// KeyLastContext is the state key holding the previously active context.
const KeyLastContext = "last_context"

// State holds the persisted key/value pairs. Unknown keys written by other
// versions of the tool are carried through saves untouched.
type State map[string]string

// Last returns the recorded previous context, or "" when none is recorded.
func (s State) Last() string {
	return s[KeyLastContext]
}

// RecordLast records name as the previous context.
func (s State) RecordLast(name string) {
	s[KeyLastContext] = name
}

// Store reads and writes the state file.
type Store struct {
	baseDir string
	path    string
	logger  *zap.SugaredLogger
}

// NewStore returns a store over the state file named by paths. A nil logger
// disables logging.
func NewStore(paths config.Paths, logger *zap.SugaredLogger) *Store {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &Store{
		baseDir: paths.BaseDir,
		path:    paths.StateFile,
		logger:  logger,
	}
}

// Load reads the state file. A missing file, invalid JSON or a top-level
// value that is not an object all load as empty state. Non-string values
// are coerced to their string form so a hand-edited file stays usable.
func (s *Store) Load() State {
	st := State{}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return st
	}

	var data map[string]interface{}
	if err := json.Unmarshal(raw, &data); err != nil {
		s.logger.Debugf("ignoring unreadable state file %s: %v", s.path, err)
		return st
	}

	for key, value := range data {
		if text, ok := value.(string); ok {
			st[key] = text
		} else {
			st[key] = fmt.Sprint(value)
		}
	}

	return st
}

// Save writes the state file, creating the configuration directory on first
// use. The content lands in a temp file first and is renamed into place so
// a crash cannot leave a half-written file behind.
func (s *Store) Save(st State) error {
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	raw, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write state file: %w", err)
	}

	return nil
}

// RecordLast loads the state, records name as the previous context and
// saves it back.
func (s *Store) RecordLast(name string) error {
	st := s.Load()
	st.RecordLast(name)
	return s.Save(st)
}

// Last returns the recorded previous context, or "" when none is recorded.
func (s *Store) Last() string {
	return s.Load().Last()
}
