package core

// Key is a raw input code as written by a host into the command cell. The
// codes follow the browser keyCode values for the arrow keys.
type Key uint8

const (
	KeyNone  Key = 0
	KeyLeft  Key = 37
	KeyUp    Key = 38
	KeyRight Key = 39
	KeyDown  Key = 40
)

// Direction maps arrow codes to headings.
func (k Key) Direction() (Direction, bool) {
	switch k {
	case KeyLeft:
		return West, true
	case KeyUp:
		return North, true
	case KeyRight:
		return East, true
	case KeyDown:
		return South, true
	}
	return 0, false
}

// Command converts the key into an optional steering command.
func (k Key) Command() (Direction, bool) { return k.Direction() }

// IsDirection reports whether k is one of the arrow codes.
func (k Key) IsDirection() bool {
	_, ok := k.Direction()
	return ok
}
