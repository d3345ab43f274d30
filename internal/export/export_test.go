package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Iron-Ham/signup/internal/activity"
	"github.com/Iron-Ham/signup/internal/errors"
)

func testCatalog() activity.Catalog {
	return activity.NewCatalog(
		activity.Activity{
			Name:            "Chess Club",
			Description:     "Learn strategies",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu"},
		},
		activity.Activity{
			Name:            "Art Studio",
			Description:     "Painting",
			Schedule:        "Mondays",
			MaxParticipants: 8,
		},
	)
}

func hostileCatalog() activity.Catalog {
	return activity.NewCatalog(activity.Activity{
		Name:            `<script>alert("x")</script>`,
		Description:     "Tom & Jerry's \x1b[31mclub\x1b[0m",
		Schedule:        "<b>always</b>",
		MaxParticipants: 3,
		Participants:    []string{`"><img src=x onerror=alert(1)>`},
	})
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{input: "", want: FormatText},
		{input: "text", want: FormatText},
		{input: "JSON", want: FormatJSON},
		{input: " html ", want: FormatHTML},
		{input: "yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errors.ErrInvalidInput) {
					t.Errorf("error should wrap ErrInvalidInput: %v", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, FormatText, testCatalog(), Options{Title: "Activities"}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Activities",
		"Chess Club",
		"11 spots left",
		"michael@mergington.edu",
		"Art Studio",
		"8 spots left",
		"No participants yet",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}

	if strings.Index(out, "Chess Club") > strings.Index(out, "Art Studio") {
		t.Error("cards should follow server order")
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("text written to a non-terminal should carry no escape codes")
	}
}

func TestWriteTextIsInert(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, hostileCatalog(), Options{}); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}
	out := buf.String()

	if strings.ContainsRune(out, '\x1b') {
		t.Errorf("escape character leaked into output: %q", out)
	}
	// Markup is shown literally on a terminal
	if !strings.Contains(out, `<script>alert("x")</script>`) {
		t.Errorf("name should be shown literally:\n%s", out)
	}
	if !strings.Contains(out, "Tom & Jerry's club") {
		t.Errorf("description should be shown literally:\n%s", out)
	}
}

func TestWriteJSONKeepsOrder(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, FormatJSON, testCatalog(), Options{}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	var decoded activity.Catalog
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	names := decoded.Names()
	if len(names) != 2 || names[0] != "Chess Club" || names[1] != "Art Studio" {
		t.Errorf("Names() = %v", names)
	}
	if !strings.Contains(buf.String(), `"max_participants": 12`) {
		t.Errorf("output should be indented JSON:\n%s", buf.String())
	}
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, FormatHTML, testCatalog(), Options{}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		`id="activities-list"`,
		`id="activity"`,
		`id="signup-form"`,
		`id="message"`,
		`<h4>Chess Club</h4>`,
		`11 spots left`,
		`aria-label="Remove michael@mergington.edu"`,
		`<div class="no-participants">No participants yet</div>`,
		`<option value="">-- Select an activity --</option>`,
		`<option value="Art Studio">Art Studio</option>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("html output missing %q", want)
		}
	}

	// Exactly one empty roster, so one placeholder
	if n := strings.Count(out, "No participants yet"); n != 1 {
		t.Errorf("placeholder count = %d, want 1", n)
	}
}

func TestWriteHTMLEscapes(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, hostileCatalog(), Options{Title: "A & B"}); err != nil {
		t.Fatalf("WriteHTML() error = %v", err)
	}
	out := buf.String()

	for _, banned := range []string{"<script>", "<b>always", "<img"} {
		if strings.Contains(out, banned) {
			t.Errorf("html output contains raw markup %q", banned)
		}
	}
	for _, want := range []string{
		"&lt;script&gt;",
		"&lt;b&gt;always&lt;/b&gt;",
		"Tom &amp; Jerry&#39;s",
		"<title>A &amp; B</title>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("html output missing escaped %q", want)
		}
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, Format("yaml"), testCatalog(), Options{}); !errors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("Write(yaml) error = %v, want ErrInvalidInput", err)
	}
}
