// Package msg defines the message types used by the board's Bubbletea
// event loop.
//
// Every network call runs inside a tea.Cmd and reports back with one of
// these messages, and every timer fires one. Update is the only place that
// reacts to them, so all state changes happen on the event loop.
package msg
