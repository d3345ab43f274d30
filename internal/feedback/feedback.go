// Package feedback implements the transient status line shown after
// sign-up and removal attempts.
//
// A Channel holds at most one message. Show replaces whatever is visible and
// schedules a HideMsg; a HideMsg only hides the message that scheduled it,
// so the most recent Show always decides both the text and the deadline.
package feedback

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Kind selects the visual style of a message.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// HideMsg asks the channel to hide the message of the given generation.
type HideMsg struct {
	Generation uint64
}

// Scheduler returns a command that delivers msg after d.
type Scheduler func(d time.Duration, msg tea.Msg) tea.Cmd

// Tick is the production Scheduler backed by tea.Tick.
func Tick(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

// Channel is the feedback line. The zero value is hidden and uses Tick.
type Channel struct {
	text       string
	kind       Kind
	visible    bool
	generation uint64
	schedule   Scheduler
}

// New returns a hidden Channel using schedule for auto-hide timers.
// A nil schedule means Tick.
func New(schedule Scheduler) Channel {
	return Channel{schedule: schedule}
}

// Show makes text visible immediately with the given kind and returns the
// command that hides it after ttl.
func (c *Channel) Show(text string, kind Kind, ttl time.Duration) tea.Cmd {
	c.generation++
	c.text = text
	c.kind = kind
	c.visible = true

	schedule := c.schedule
	if schedule == nil {
		schedule = Tick
	}
	return schedule(ttl, HideMsg{Generation: c.generation})
}

// Hide handles a HideMsg. It reports whether the message was hidden; stale
// timers from earlier Show calls are ignored.
func (c *Channel) Hide(msg HideMsg) bool {
	if msg.Generation != c.generation || !c.visible {
		return false
	}
	c.visible = false
	return true
}

// Visible reports whether a message is on screen.
func (c Channel) Visible() bool { return c.visible }

// Text returns the current message text.
func (c Channel) Text() string { return c.text }

// Kind returns the current message kind.
func (c Channel) Kind() Kind { return c.kind }
