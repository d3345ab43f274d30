// Package activity defines the activity catalog reported by the sign-up service.
//
// The service answers GET /activities with a JSON object keyed by activity
// name. A Catalog keeps the order in which the server listed those keys so
// every rendering of the same response is identical.
package activity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

// Activity is a schedulable event with bounded capacity and a roster.
type Activity struct {
	// Name is the catalog key. It is not part of the JSON value.
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// SpotsLeft returns capacity minus the current participant count.
// It is always derived from the roster and may be negative if the server
// reports an over-full activity.
func (a Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// HasParticipant reports whether email is on the roster.
func (a Activity) HasParticipant(email string) bool {
	return slices.Contains(a.Participants, email)
}

// Catalog maps activity names to activities and remembers server order.
// The zero value is an empty catalog.
type Catalog struct {
	names  []string
	byName map[string]Activity
}

// NewCatalog builds a catalog from activities in the given order.
// A repeated name replaces the earlier value but keeps its position.
func NewCatalog(activities ...Activity) Catalog {
	var c Catalog
	for _, a := range activities {
		c.put(a)
	}
	return c
}

func (c *Catalog) put(a Activity) {
	if c.byName == nil {
		c.byName = make(map[string]Activity)
	}
	if a.Participants == nil {
		a.Participants = []string{}
	}
	if _, exists := c.byName[a.Name]; !exists {
		c.names = append(c.names, a.Name)
	}
	c.byName[a.Name] = a
}

// Len returns the number of activities.
func (c Catalog) Len() int {
	return len(c.names)
}

// Names returns activity names in server order.
func (c Catalog) Names() []string {
	return slices.Clone(c.names)
}

// Get returns the named activity.
func (c Catalog) Get(name string) (Activity, bool) {
	a, ok := c.byName[name]
	return a, ok
}

// All returns every activity in server order.
func (c Catalog) All() []Activity {
	out := make([]Activity, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, c.byName[name])
	}
	return out
}

// UnmarshalJSON decodes a JSON object keyed by activity name, keeping key order.
// A JSON null decodes to an empty catalog.
func (c *Catalog) UnmarshalJSON(data []byte) error {
	*c = Catalog{}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("read catalog: %w", err)
	}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("catalog must be a JSON object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("read activity name: %w", err)
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("activity name must be a string, got %v", keyTok)
		}

		var a Activity
		if err := dec.Decode(&a); err != nil {
			return fmt.Errorf("decode activity %q: %w", name, err)
		}
		a.Name = name
		c.put(a)
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("read catalog end: %w", err)
	}
	return nil
}

// MarshalJSON encodes the catalog as a JSON object in server order.
func (c Catalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range c.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(c.byName[name])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
