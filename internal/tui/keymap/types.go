// Package keymap provides key binding definitions and lookup for the board.
// Bindings are declared per mode so the Update loop can resolve a key press
// to a named command without a nest of string comparisons.
package keymap

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Mode represents the current input mode of the board.
// Different modes have different key bindings active.
type Mode string

const (
	ModeList    Mode = "list"    // Browsing activity cards and participants
	ModeForm    Mode = "form"    // Filling in the sign-up form
	ModeConfirm Mode = "confirm" // Answering a removal confirmation
)

// Command represents a named action that can be triggered by a key binding.
type Command string

// List mode commands
const (
	// Navigation
	CmdNextRow          Command = "next_row"
	CmdPrevRow          Command = "prev_row"
	CmdNextCard         Command = "next_card"
	CmdPrevCard         Command = "prev_card"
	CmdScrollHalfPageUp Command = "scroll_half_page_up"
	CmdScrollHalfPageDn Command = "scroll_half_page_down"
	CmdScrollToTop      Command = "scroll_to_top"
	CmdScrollToBottom   Command = "scroll_to_bottom"

	// Actions
	CmdRemoveParticipant Command = "remove_participant"
	CmdReload            Command = "reload"
	CmdFocusForm         Command = "focus_form"
	CmdJoinSelected      Command = "join_selected"

	// Help and exit
	CmdToggleHelp Command = "toggle_help"
	CmdQuit       Command = "quit"
)

// Form mode commands
const (
	CmdSubmit     Command = "submit"
	CmdNextField  Command = "next_field"
	CmdPrevField  Command = "prev_field"
	CmdNextOption Command = "next_option"
	CmdPrevOption Command = "prev_option"
	CmdFocusList  Command = "focus_list"
)

// Confirm mode commands. A key without a binding declines.
const (
	CmdConfirmYes Command = "confirm_yes"
)

// Modifier represents keyboard modifiers reported next to the key.
// Ctrl and shift combinations arrive as their own tea.KeyType values
// (tea.KeyCtrlU, tea.KeyShiftTab), so alt is the only modifier.
type Modifier uint8

const (
	ModNone Modifier = 0
	ModAlt  Modifier = 1
)

// String returns a human-readable representation of modifiers.
func (m Modifier) String() string {
	if m&ModAlt != 0 {
		return "alt+"
	}
	return ""
}

// KeyBinding represents a single key binding configuration.
type KeyBinding struct {
	// Key is the primary key for this binding.
	// For special keys, use tea.KeyType constants (e.g., tea.KeyEnter).
	// For rune keys, use tea.KeyRunes and set Rune field.
	KeyType tea.KeyType

	// Rune is the character for rune-based keys (when KeyType is tea.KeyRunes).
	Rune rune

	// Modifiers contains the modifier keys that must be pressed.
	Modifiers Modifier

	// Command is the action to execute when this binding is triggered.
	Command Command

	// Description is a human-readable description for help display.
	Description string

	// Category groups related bindings together in help display.
	Category string
}

// Matches checks if a tea.KeyMsg matches this binding.
func (kb KeyBinding) Matches(msg tea.KeyMsg) bool {
	// Check modifiers
	wantAlt := kb.Modifiers&ModAlt != 0
	if msg.Alt != wantAlt {
		return false
	}

	// For special keys (not runes), match the key type directly
	if kb.KeyType != tea.KeyRunes {
		return msg.Type == kb.KeyType
	}

	// For rune keys, check the rune value
	if msg.Type != tea.KeyRunes || len(msg.Runes) == 0 {
		return false
	}

	// If Rune is 0, this is a catch-all binding for any rune
	if kb.Rune == 0 {
		return true
	}

	return msg.Runes[0] == kb.Rune
}

// String returns a human-readable representation of the key binding.
func (kb KeyBinding) String() string {
	prefix := kb.Modifiers.String()

	if kb.KeyType != tea.KeyRunes {
		return prefix + kb.KeyType.String()
	}

	// Handle special display cases
	switch kb.Rune {
	case ' ':
		return prefix + "space"
	default:
		return prefix + string(kb.Rune)
	}
}

// ModeBindings holds all key bindings for a specific mode.
type ModeBindings struct {
	Mode     Mode
	Bindings []KeyBinding
}

// GetBinding looks up a command for a key in this mode.
// Returns the command and true if found, or empty command and false if not.
func (mb *ModeBindings) GetBinding(msg tea.KeyMsg) (Command, bool) {
	for _, binding := range mb.Bindings {
		if binding.Matches(msg) {
			return binding.Command, true
		}
	}
	return "", false
}

// Keymap contains all key bindings organized by mode.
type Keymap struct {
	// Name identifies this keymap (e.g., "default", "vim", "emacs").
	Name string

	// Description provides a human-readable description.
	Description string

	// Modes maps each mode to its bindings.
	Modes map[Mode]*ModeBindings
}

// GetBinding looks up a command for a key in a specific mode.
// Returns the command and true if found, or empty command and false if not.
func (km *Keymap) GetBinding(msg tea.KeyMsg, mode Mode) (Command, bool) {
	mb, ok := km.Modes[mode]
	if !ok {
		return "", false
	}
	return mb.GetBinding(msg)
}

// GetModeBindings returns all bindings for a specific mode.
func (km *Keymap) GetModeBindings(mode Mode) []KeyBinding {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}
	return mb.Bindings
}

// GetBindingsForCommand returns all bindings that trigger a specific command.
// Useful for displaying "Press X or Y to do Z" in help.
func (km *Keymap) GetBindingsForCommand(cmd Command, mode Mode) []KeyBinding {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}

	var result []KeyBinding
	for _, binding := range mb.Bindings {
		if binding.Command == cmd {
			result = append(result, binding)
		}
	}
	return result
}

// HelpEntries returns one binding per command for a mode, in declaration
// order, skipping bindings without a description. The first binding of a
// command is the one shown.
func (km *Keymap) HelpEntries(mode Mode) []KeyBinding {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}

	seen := make(map[Command]bool)
	var entries []KeyBinding
	for _, binding := range mb.Bindings {
		if binding.Description == "" || seen[binding.Command] {
			continue
		}
		seen[binding.Command] = true
		entries = append(entries, binding)
	}
	return entries
}
