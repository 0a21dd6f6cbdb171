package interact

import "strings"

// Key identifies a keyboard key the editor reacts to
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape      // abort a pending connection
	KeyDelete      // remove the selected node
	KeySpace       // spawn a node from the spawn callable
)

var keyNames = map[Key]string{
	KeyUnknown: "unknown",
	KeyEscape:  "escape",
	KeyDelete:  "delete",
	KeySpace:   "space",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return keyNames[KeyUnknown]
}

// ParseKey converts a key name to Key, defaulting to KeyUnknown
func ParseKey(s string) Key {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "escape", "esc":
		return KeyEscape
	case "delete", "del", "backspace":
		return KeyDelete
	case "space", " ":
		return KeySpace
	default:
		return KeyUnknown
	}
}
