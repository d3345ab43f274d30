package export

import (
	"fmt"
	"html/template"
	"io"

	"github.com/Iron-Ham/signup/internal/activity"
	"github.com/Iron-Ham/signup/internal/board"
)

// pageTemplate mirrors the browser page. html/template escapes every
// interpolated value for its context.
var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<section id="activities-container">
<h3>{{.Title}}</h3>
<div id="activities-list">
{{- range .Board.Cards}}
<div class="activity-card">
<h4>{{.Name}}</h4>
<p>{{.Description}}</p>
<p><strong>Schedule:</strong> {{.Schedule}}</p>
<p><strong>Availability:</strong> {{.SpotsLeft}} spots left</p>
<div class="participants-section">
<h5>{{$.Heading}}</h5>
{{- if .Empty}}
<div class="no-participants">{{$.NoParticipants}}</div>
{{- else}}
<ul class="participants-list">
{{- range .Rows}}
<li class="participant-item"><span>{{.Email}}</span> <button type="button" class="participant-remove" aria-label="{{.RemoveLabel}}">✕</button></li>
{{- end}}
</ul>
{{- end}}
</div>
</div>
{{- end}}
</div>
</section>
<section id="signup-container">
<form id="signup-form">
<label for="email">Student Email:</label>
<input type="email" id="email" required>
<label for="activity">Select Activity:</label>
<select id="activity" required>
{{- range .Board.Options}}
<option value="{{.Value}}">{{.Label}}</option>
{{- end}}
</select>
<button type="submit">Sign Up</button>
</form>
<div id="message" class="hidden"></div>
</section>
</body>
</html>
`))

type pageData struct {
	Title          string
	Heading        string
	NoParticipants string
	Board          board.Board
}

// WriteHTML writes catalog as a standalone HTML page.
func WriteHTML(w io.Writer, catalog activity.Catalog, opts Options) error {
	title := opts.Title
	if title == "" {
		title = "Activities"
	}

	data := pageData{
		Title:          title,
		Heading:        board.ParticipantsHeading,
		NoParticipants: board.NoParticipantsText,
		Board:          board.Build(catalog),
	}
	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}
