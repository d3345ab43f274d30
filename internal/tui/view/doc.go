// Package view renders the regions of the board.
//
// The board is split into the same four regions as the browser page:
//   - the activities list ([RenderList]), scrolled by a viewport owned by the model
//   - the sign-up form ([RenderForm]) with the email field and the activity selector
//   - the feedback line ([RenderFeedback])
//   - the help bar ([HelpBarView])
//
// A removal confirmation ([RenderConfirm]) takes the place of the form
// while it is open.
//
// Every function here is a pure function of its inputs. All text that came
// from the server passes through board.Sanitize before it is styled.
package view
