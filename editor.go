package spire

// Editor - The main interface that represents the program. At any point there will be just one
// instantiation of Editor. The program passes key events that the user provides (decoded from the
// terminal), and the Editor handles the manipulation of internal state. The returned Action tells
// the caller whether anything it derived from that state needs recomputing.
type Editor interface {
	Handle(ev KeyEvent) (Action, error)
	Close() error
}

// Action is the outcome of handling a single key event.
type Action int

const (
	Ignored Action = iota
	CursorMove
	BufferMutated
	ModeChanged
	SaveRequested
	QuitRequested
)

func (a Action) String() string {
	switch a {
	case Ignored:
		return "ignored"
	case CursorMove:
		return "cursor-move"
	case BufferMutated:
		return "buffer-mutated"
	case ModeChanged:
		return "mode-changed"
	case SaveRequested:
		return "save-requested"
	case QuitRequested:
		return "quit-requested"
	default:
		return "unknown"
	}
}

// Mutated reports whether the buffer content changed. The render layer only rebuilds its display
// strings when this is true.
func (a Action) Mutated() bool {
	return a == BufferMutated
}
