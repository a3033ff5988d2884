package console

import "fmt"

// Command is a user action in the interactive session.
type Command int

const (
	// CommandNone is any key without a binding.
	CommandNone Command = iota

	// CommandSave writes the loaded figure back to its file.
	CommandSave

	// CommandExit ends the session.
	CommandExit
)

// String returns the command name used in logs.
func (c Command) String() string {
	switch c {
	case CommandSave:
		return "save"
	case CommandExit:
		return "exit"
	default:
		return "none"
	}
}

// Keymap binds keys to commands.
type Keymap struct {
	Save KeyEvent
	Exit KeyEvent
}

// DefaultKeymap binds F1 to save and Escape to exit.
func DefaultKeymap() Keymap {
	return Keymap{
		Save: KeyEvent{Key: KeyF1},
		Exit: KeyEvent{Key: KeyEscape},
	}
}

// NewKeymap builds a keymap from configuration key names.
func NewKeymap(saveName, exitName string) (Keymap, error) {
	save, err := ParseKey(saveName)
	if err != nil {
		return Keymap{}, fmt.Errorf("save key: %w", err)
	}
	exit, err := ParseKey(exitName)
	if err != nil {
		return Keymap{}, fmt.Errorf("exit key: %w", err)
	}
	if save.Matches(exit) {
		return Keymap{}, fmt.Errorf("save and exit are both bound to %s", save)
	}
	return Keymap{Save: save, Exit: exit}, nil
}

// Command maps a key event to its command. Ctrl+C and Ctrl+D always exit,
// since raw mode turns them into ordinary bytes instead of a signal and an
// end of input.
func (k Keymap) Command(ev KeyEvent) Command {
	switch {
	case ev.Key == KeyCtrlC, ev.Key == KeyCtrlD:
		return CommandExit
	case ev.Matches(k.Save):
		return CommandSave
	case ev.Matches(k.Exit):
		return CommandExit
	default:
		return CommandNone
	}
}

// Hint returns the instruction line printed before the command loop.
func (k Keymap) Hint() string {
	return fmt.Sprintf("Press %s to save the file, %s to exit.", k.Save, k.Exit)
}
