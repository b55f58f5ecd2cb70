package internal

// Mode gates which key bindings are consulted. A session starts in NavigationMode and only ever
// toggles between the two modes.
type Mode int

const (
	NavigationMode Mode = iota
	InsertionMode
)

func (m Mode) String() string {
	switch m {
	case NavigationMode:
		return "NAVIGATION"
	case InsertionMode:
		return "INSERT"
	default:
		return "UNKNOWN"
	}
}

// enterInsert is the only way into InsertionMode.
func (m Mode) enterInsert() (Mode, bool) {
	if m != NavigationMode {
		return m, false
	}
	return InsertionMode, true
}

// escape is the only way back to NavigationMode.
func (m Mode) escape() (Mode, bool) {
	if m != InsertionMode {
		return m, false
	}
	return NavigationMode, true
}
