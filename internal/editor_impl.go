package internal

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/omarnabikhan/spire"
	"github.com/omarnabikhan/spire/internal/buffer"
	"github.com/omarnabikhan/spire/internal/fileio"
)

// ErrNoPath is reported when saving a session that was started without a file.
var ErrNoPath = errors.New("no file name")

// Session owns the buffer, cursor and mode for the lifetime of the process. It is driven by a
// single control loop and is not safe for concurrent use.
type Session struct {
	buf    *buffer.Buffer
	cursor Cursor
	mode   Mode

	// Empty when started without a file. Only used by save.
	path string
	// Set when the lines change, cleared by a successful save. A BufferMutated action that only
	// moved the cursor leaves it alone.
	modified bool
	// Shown to user at bottom of screen.
	userMsg string

	logger *log.Logger
}

var _ spire.Editor = (*Session)(nil)

// NewEditor starts a session on path, or on an empty buffer when path is empty. Load failures are
// returned as-is and no session is created.
func NewEditor(path string, logger *log.Logger) (*Session, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &Session{
		buf:    buffer.New(),
		mode:   NavigationMode,
		path:   path,
		logger: logger,
	}
	if path == "" {
		return s, nil
	}

	stats, err := fileio.Load(path, s.buf)
	if err != nil {
		return nil, err
	}
	s.userMsg = fmt.Sprintf(`"%s" %dL %dB`, path, stats.Lines, stats.Bytes)
	s.logger.Printf("loaded %s: %d lines, %d bytes", path, stats.Lines, stats.Bytes)
	return s, nil
}

// Handle dispatches ev and carries out any I/O the resulting action asks for. A failed save is
// reported through Message and leaves the buffer as it was; the returned error is reserved for
// buffer bugs.
func (s *Session) Handle(ev spire.KeyEvent) (spire.Action, error) {
	action, err := s.Dispatch(ev)
	if err != nil {
		s.logger.Printf("dispatch %+v in %s: %v", ev, s.mode, err)
		return spire.Ignored, err
	}

	switch action {
	case spire.SaveRequested:
		if err := s.Save(); err != nil {
			s.userMsg = err.Error()
		}
	case spire.QuitRequested:
		s.logger.Printf("quit requested (modified=%t)", s.modified)
	}
	return action, nil
}

// Dispatch maps ev to an action using the bindings of the current mode and applies any cursor,
// edit or mode change. It never touches the disk.
func (s *Session) Dispatch(ev spire.KeyEvent) (spire.Action, error) {
	switch s.mode {
	case NavigationMode:
		return s.handleNavigation(ev)
	case InsertionMode:
		return s.handleInsertion(ev)
	default:
		return spire.Ignored, fmt.Errorf("unknown mode %d", s.mode)
	}
}

// Save writes the buffer to the session's file.
func (s *Session) Save() error {
	if s.path == "" {
		return ErrNoPath
	}
	stats, err := fileio.Save(s.path, s.buf)
	if err != nil {
		s.logger.Printf("save failed: %v", err)
		return err
	}
	s.modified = false
	// Update the display to say we wrote to disc.
	s.userMsg = fmt.Sprintf("%d bytes written to disc", stats.Bytes)
	s.logger.Printf("saved %s: %d lines, %d bytes", s.path, stats.Lines, stats.Bytes)
	return nil
}

func (s *Session) Close() error {
	s.logger.Printf("session closed")
	return nil
}

func (s *Session) swapEditorMode(mode Mode) {
	s.logger.Printf("mode %s -> %s", s.mode, mode)
	s.mode = mode
	switch mode {
	case NavigationMode:
		s.userMsg = ""
	case InsertionMode:
		s.userMsg = "-- INSERT --"
	}
}

func (s *Session) Lines() []string { return s.buf.Strings() }
func (s *Session) LineCount() int { return s.buf.LineCount() }
func (s *Session) Cursor() Cursor { return s.cursor }
func (s *Session) Mode() Mode { return s.mode }
func (s *Session) Message() string { return s.userMsg }
func (s *Session) Path() string { return s.path }
func (s *Session) Modified() bool { return s.modified }
