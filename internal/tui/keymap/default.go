package keymap

import tea "github.com/charmbracelet/bubbletea"

// DefaultKeymap returns the default board key bindings.
func DefaultKeymap() *Keymap {
	return &Keymap{
		Name:        "default",
		Description: "Default board key bindings",
		Modes: map[Mode]*ModeBindings{
			ModeList:    defaultListBindings(),
			ModeForm:    defaultFormBindings(),
			ModeConfirm: defaultConfirmBindings(),
		},
	}
}

func defaultListBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeList,
		Bindings: []KeyBinding{
			// Participant navigation
			{KeyType: tea.KeyRunes, Rune: 'j', Command: CmdNextRow, Description: "Next participant", Category: "Navigation"},
			{KeyType: tea.KeyDown, Command: CmdNextRow, Category: "Navigation"},
			{KeyType: tea.KeyRunes, Rune: 'k', Command: CmdPrevRow, Description: "Previous participant", Category: "Navigation"},
			{KeyType: tea.KeyUp, Command: CmdPrevRow, Category: "Navigation"},
			{KeyType: tea.KeyRunes, Rune: 'l', Command: CmdNextCard, Description: "Next activity", Category: "Navigation"},
			{KeyType: tea.KeyRight, Command: CmdNextCard, Category: "Navigation"},
			{KeyType: tea.KeyRunes, Rune: 'h', Command: CmdPrevCard, Description: "Previous activity", Category: "Navigation"},
			{KeyType: tea.KeyLeft, Command: CmdPrevCard, Category: "Navigation"},

			// Scrolling
			{KeyType: tea.KeyCtrlU, Command: CmdScrollHalfPageUp, Description: "Scroll half page up", Category: "Scrolling"},
			{KeyType: tea.KeyPgUp, Command: CmdScrollHalfPageUp, Category: "Scrolling"},
			{KeyType: tea.KeyCtrlD, Command: CmdScrollHalfPageDn, Description: "Scroll half page down", Category: "Scrolling"},
			{KeyType: tea.KeyPgDown, Command: CmdScrollHalfPageDn, Category: "Scrolling"},
			{KeyType: tea.KeyRunes, Rune: 'g', Command: CmdScrollToTop, Description: "Go to top", Category: "Scrolling"},
			{KeyType: tea.KeyRunes, Rune: 'G', Command: CmdScrollToBottom, Description: "Go to bottom", Category: "Scrolling"},

			// Actions
			{KeyType: tea.KeyRunes, Rune: 'x', Command: CmdRemoveParticipant, Description: "Remove participant", Category: "Actions"},
			{KeyType: tea.KeyDelete, Command: CmdRemoveParticipant, Category: "Actions"},
			{KeyType: tea.KeyRunes, Rune: 's', Command: CmdJoinSelected, Description: "Sign up for this activity", Category: "Actions"},
			{KeyType: tea.KeyTab, Command: CmdFocusForm, Description: "Sign-up form", Category: "Actions"},
			{KeyType: tea.KeyRunes, Rune: 'r', Command: CmdReload, Description: "Reload", Category: "Actions"},

			// Application
			{KeyType: tea.KeyRunes, Rune: '?', Command: CmdToggleHelp, Description: "Toggle help", Category: "Application"},
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdQuit, Description: "Quit", Category: "Application"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Category: "Application"},
		},
	}
}

// defaultFormBindings only lists the keys the form intercepts. Everything
// else goes to the focused field.
func defaultFormBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeForm,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyEnter, Command: CmdSubmit, Description: "Sign up", Category: "Form"},
			{KeyType: tea.KeyTab, Command: CmdNextField, Description: "Next field", Category: "Form"},
			{KeyType: tea.KeyShiftTab, Command: CmdPrevField, Description: "Previous field", Category: "Form"},
			{KeyType: tea.KeyDown, Command: CmdNextOption, Description: "Next activity", Category: "Form"},
			{KeyType: tea.KeyUp, Command: CmdPrevOption, Description: "Previous activity", Category: "Form"},
			{KeyType: tea.KeyEsc, Command: CmdFocusList, Description: "Back to list", Category: "Form"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Application"},
		},
	}
}

// defaultConfirmBindings accepts y and Y. Any other key declines.
func defaultConfirmBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeConfirm,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyRunes, Rune: 'y', Command: CmdConfirmYes, Description: "Remove", Category: "Confirm"},
			{KeyType: tea.KeyRunes, Rune: 'Y', Command: CmdConfirmYes, Category: "Confirm"},
		},
	}
}
