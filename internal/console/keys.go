package console

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Key represents a parsed input key.
type Key uint16

const (
	KeyNone Key = iota
	KeyRune     // Printable character (check KeyEvent.Rune)

	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeySpace
	KeyCtrlC
	KeyCtrlD

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// KeyEvent is a single decoded key press.
type KeyEvent struct {
	Key  Key
	Rune rune
}

var keyNames = map[Key]string{
	KeyEscape:    "Escape",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeySpace:     "Space",
	KeyCtrlC:     "Ctrl+C",
	KeyCtrlD:     "Ctrl+D",
	KeyF1:        "F1",
	KeyF2:        "F2",
	KeyF3:        "F3",
	KeyF4:        "F4",
	KeyF5:        "F5",
	KeyF6:        "F6",
	KeyF7:        "F7",
	KeyF8:        "F8",
	KeyF9:        "F9",
	KeyF10:       "F10",
	KeyF11:       "F11",
	KeyF12:       "F12",
}

// aliases maps lowercase config names to keys.
var aliases = map[string]Key{
	"esc":       KeyEscape,
	"escape":    KeyEscape,
	"enter":     KeyEnter,
	"return":    KeyEnter,
	"tab":       KeyTab,
	"backspace": KeyBackspace,
	"space":     KeySpace,
	"f1":        KeyF1,
	"f2":        KeyF2,
	"f3":        KeyF3,
	"f4":        KeyF4,
	"f5":        KeyF5,
	"f6":        KeyF6,
	"f7":        KeyF7,
	"f8":        KeyF8,
	"f9":        KeyF9,
	"f10":       KeyF10,
	"f11":       KeyF11,
	"f12":       KeyF12,
}

// String returns the display name used in prompts.
func (e KeyEvent) String() string {
	if e.Key == KeyRune {
		return strings.ToUpper(string(e.Rune))
	}
	if name, ok := keyNames[e.Key]; ok {
		return name
	}
	return "None"
}

// Matches reports whether e is the same key as other. Letters compare
// case-insensitively so a binding of "s" also fires on "S".
func (e KeyEvent) Matches(other KeyEvent) bool {
	if e.Key != other.Key {
		return false
	}
	if e.Key != KeyRune {
		return true
	}
	return unicode.ToLower(e.Rune) == unicode.ToLower(other.Rune)
}

// ParseKey converts a configuration key name such as "f1", "esc" or "s".
func ParseKey(name string) (KeyEvent, error) {
	trimmed := strings.TrimSpace(name)
	if key, ok := aliases[strings.ToLower(trimmed)]; ok {
		return KeyEvent{Key: key}, nil
	}

	if utf8.RuneCountInString(trimmed) == 1 {
		r, _ := utf8.DecodeRuneInString(trimmed)
		if unicode.IsPrint(r) && r != ' ' {
			return KeyEvent{Key: KeyRune, Rune: r}, nil
		}
	}

	return KeyEvent{}, fmt.Errorf("unknown key name %q", name)
}

// =============================================================================
// ESCAPE SEQUENCES
// =============================================================================

// CSI sequences (ESC [ ...), keyed by the bytes after the bracket.
var csiSequences = map[string]Key{
	// xterm
	"11~": KeyF1,
	"12~": KeyF2,
	"13~": KeyF3,
	"14~": KeyF4,
	"15~": KeyF5,
	"17~": KeyF6,
	"18~": KeyF7,
	"19~": KeyF8,
	"20~": KeyF9,
	"21~": KeyF10,
	"23~": KeyF11,
	"24~": KeyF12,

	// vt / linux console
	"[A": KeyF1,
	"[B": KeyF2,
	"[C": KeyF3,
	"[D": KeyF4,
	"[E": KeyF5,
}

// SS3 sequences (ESC O ...), keyed by the final byte.
var ss3Sequences = map[byte]Key{
	'P': KeyF1,
	'Q': KeyF2,
	'R': KeyF3,
	'S': KeyF4,
}

// DecodeKeys converts raw terminal input into key events.
//
// A read from a raw terminal delivers one key press (or a burst of them) per
// chunk, so an ESC at the end of the chunk is a lone Escape press. Unknown
// escape sequences, such as arrow keys, are swallowed.
func DecodeKeys(data []byte) []KeyEvent {
	events, _ := decodeKeys(data, false)
	return events
}

// decodeKeys decodes data and returns the number of bytes consumed. With
// hold set, an escape sequence cut off at the end of data is left unconsumed
// so that it can be completed by the next read.
func decodeKeys(data []byte, hold bool) ([]KeyEvent, int) {
	var events []KeyEvent
	n := len(data)

	for i := 0; i < n; {
		b := data[i]

		switch {
		case b == 0x1b:
			if hold && incompleteEscape(data[i:]) {
				return events, i
			}
			consumed, ev := decodeEscape(data[i:])
			if ev.Key != KeyNone {
				events = append(events, ev)
			}
			i += consumed

		case b == '\r' || b == '\n':
			events = append(events, KeyEvent{Key: KeyEnter})
			i++

		case b == '\t':
			events = append(events, KeyEvent{Key: KeyTab})
			i++

		case b == 0x7f || b == 0x08:
			events = append(events, KeyEvent{Key: KeyBackspace})
			i++

		case b == 0x03:
			events = append(events, KeyEvent{Key: KeyCtrlC})
			i++

		case b == 0x04:
			events = append(events, KeyEvent{Key: KeyCtrlD})
			i++

		case b == ' ':
			events = append(events, KeyEvent{Key: KeySpace})
			i++

		case b < 0x20:
			// Other control characters carry no binding.
			i++

		default:
			r, size := utf8.DecodeRune(data[i:])
			if r != utf8.RuneError {
				events = append(events, KeyEvent{Key: KeyRune, Rune: r})
			}
			i += size
		}
	}

	return events, n
}

// incompleteEscape reports whether data, starting with ESC, is a prefix of
// an SS3 or CSI sequence that has not reached its final byte.
func incompleteEscape(data []byte) bool {
	switch {
	case len(data) == 1:
		return true
	case data[1] == 'O':
		return len(data) == 2
	case data[1] != '[':
		return false
	case len(data) == 2:
		return true
	case data[2] == '[':
		return len(data) == 3
	}

	for _, b := range data[2:] {
		if b < 0x20 || b >= 0x40 {
			return false
		}
	}
	return true
}

// decodeEscape parses a sequence starting with ESC and returns the number of
// bytes consumed. KeyNone means the sequence was recognised but unbound.
func decodeEscape(data []byte) (int, KeyEvent) {
	if len(data) < 2 {
		return 1, KeyEvent{Key: KeyEscape}
	}

	switch data[1] {
	case 'O':
		if len(data) < 3 {
			return 1, KeyEvent{Key: KeyEscape}
		}
		return 3, KeyEvent{Key: ss3Sequences[data[2]]}

	case '[':
		// vt function keys: ESC [ [ A
		if len(data) >= 4 && data[2] == '[' {
			return 4, KeyEvent{Key: csiSequences[string(data[2:4])]}
		}

		// Parameter and intermediate bytes, then one final byte.
		j := 2
		for j < len(data) && data[j] >= 0x20 && data[j] < 0x40 {
			j++
		}
		if j >= len(data) {
			// Truncated sequence; drop it.
			return len(data), KeyEvent{}
		}
		return j + 1, KeyEvent{Key: csiSequences[string(data[2:j+1])]}

	default:
		// ESC followed by anything else is an Escape press; the next byte is
		// decoded on its own.
		return 1, KeyEvent{Key: KeyEscape}
	}
}
