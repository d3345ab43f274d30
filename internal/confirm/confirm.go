// Package confirm asks the user to approve destructive actions.
package confirm

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirmer decides whether an action described by prompt may proceed.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Func adapts an ordinary function to a Confirmer.
type Func func(prompt string) bool

// Confirm calls f(prompt).
func (f Func) Confirm(prompt string) bool {
	return f(prompt)
}

// Always returns a Confirmer that answers answer without asking.
func Always(answer bool) Confirmer {
	return Func(func(string) bool { return answer })
}

// IsYes reports whether a typed answer approves the action.
// Only "y" and "yes" (any case, surrounding space ignored) approve.
func IsYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// Prompt asks on Out and reads one line from In.
// Anything other than an explicit yes, including EOF, declines.
type Prompt struct {
	In  io.Reader
	Out io.Writer
}

// Confirm writes "prompt [y/N] " and reads the answer.
func (p Prompt) Confirm(prompt string) bool {
	if p.Out != nil {
		fmt.Fprintf(p.Out, "%s [y/N] ", prompt)
	}
	if p.In == nil {
		return false
	}
	line, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return IsYes(line)
}

// RemovalPrompt is the question asked before removing a participant.
func RemovalPrompt(email, activity string) string {
	return fmt.Sprintf("Remove %s from %s?", email, activity)
}
