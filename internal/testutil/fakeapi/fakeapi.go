// Package fakeapi provides an in-memory activities service for tests.
//
// It implements the three endpoints the client consumes with the same
// status codes and JSON shapes as the real service, and it counts requests
// per route so tests can assert how many fetches a user action caused.
package fakeapi

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"slices"
	"sync"
	"testing"

	"github.com/Iron-Ham/signup/internal/activity"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// Route names used by Count.
const (
	RouteList   = "GET /activities"
	RouteSignup = "POST /activities/{name}/signup"
	RouteRemove = "DELETE /activities/{name}/participants"
)

// Server is a fake activities service.
type Server struct {
	mu         sync.Mutex
	activities []activity.Activity
	counts     map[string]int
	failures   map[string][]failure
	requestIDs []string

	router chi.Router
}

type failure struct {
	status int
	body   string
}

// New returns a Server seeded with activities, in order.
func New(activities ...activity.Activity) *Server {
	s := &Server{
		counts:   make(map[string]int),
		failures: make(map[string][]failure),
	}
	for _, a := range activities {
		if a.Participants == nil {
			a.Participants = []string{}
		}
		a.Participants = slices.Clone(a.Participants)
		s.activities = append(s.activities, a)
	}

	r := chi.NewRouter()
	r.Use(s.track)
	r.Get("/activities", s.handleList)
	r.Post("/activities/{name}/signup", s.handleSignup)
	r.Delete("/activities/{name}/participants", s.handleRemove)
	s.router = r
	return s
}

// Start serves s on an httptest server closed at the end of the test.
func Start(t *testing.T, activities ...activity.Activity) (*Server, *httptest.Server) {
	t.Helper()
	s := New(activities...)
	ts := httptest.NewServer(s)
	t.Cleanup(ts.Close)
	return s, ts
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Count returns how many requests hit route.
func (s *Server) Count(route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[route]
}

// Total returns how many requests the server has handled.
func (s *Server) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.counts {
		n += c
	}
	return n
}

// RequestIDs returns the X-Request-ID headers seen, in arrival order.
func (s *Server) RequestIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.requestIDs)
}

// FailNext makes the next request to route answer status with a raw body
// instead of being handled. Failures queue per route.
func (s *Server) FailNext(route string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[route] = append(s.failures[route], failure{status: status, body: body})
}

// Snapshot returns the current state as a catalog.
func (s *Server) Snapshot() activity.Catalog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalogLocked()
}

func (s *Server) catalogLocked() activity.Catalog {
	copies := make([]activity.Activity, len(s.activities))
	for i, a := range s.activities {
		a.Participants = slices.Clone(a.Participants)
		copies[i] = a
	}
	return activity.NewCatalog(copies...)
}

// track counts requests by route pattern and replays queued failures.
func (s *Server) track(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := routeOf(r)

		s.mu.Lock()
		s.counts[route]++
		if id := r.Header.Get("X-Request-ID"); id != "" {
			s.requestIDs = append(s.requestIDs, id)
		}
		var f *failure
		if queued := s.failures[route]; len(queued) > 0 {
			f = &queued[0]
			s.failures[route] = queued[1:]
		}
		s.mu.Unlock()

		if f != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(f.status)
			_, _ = w.Write([]byte(f.body))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func routeOf(r *http.Request) string {
	rctx := chi.NewRouteContext()
	if router, ok := r.Context().Value(chi.RouteCtxKey).(*chi.Context); ok && router.Routes != nil {
		if router.Routes.Match(rctx, r.Method, pathOf(r)) {
			return r.Method + " " + rctx.RoutePattern()
		}
	}
	return r.Method + " " + r.URL.Path
}

func pathOf(r *http.Request) string {
	if r.URL.RawPath != "" {
		return r.URL.RawPath
	}
	return r.URL.Path
}

// nameParam returns the decoded {name} segment. chi matches on RawPath
// when the request needed non-default escaping, so the segment may
// still be percent-encoded.
func nameParam(r *http.Request) string {
	name := chi.URLParam(r, "name")
	if r.URL.RawPath == "" {
		return name
	}
	if decoded, err := url.PathUnescape(name); err == nil {
		return decoded
	}
	return name
}

type messageResponse struct {
	Message string `json:"message"`
}

type detailResponse struct {
	Detail string `json:"detail"`
}

func respondDetail(w http.ResponseWriter, r *http.Request, status int, detail string) {
	render.Status(r, status)
	render.JSON(w, r, detailResponse{Detail: detail})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, s.Snapshot())
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	name := nameParam(r)
	email := r.URL.Query().Get("email")

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(name)
	if idx < 0 {
		respondDetail(w, r, http.StatusNotFound, "Activity not found")
		return
	}
	a := &s.activities[idx]
	if slices.Contains(a.Participants, email) {
		respondDetail(w, r, http.StatusBadRequest, "Student is already signed up")
		return
	}
	if len(a.Participants) >= a.MaxParticipants {
		respondDetail(w, r, http.StatusBadRequest, "Activity full")
		return
	}
	a.Participants = append(a.Participants, email)

	render.JSON(w, r, messageResponse{Message: fmt.Sprintf("Signed up %s for %s", email, name)})
}

func (s *Server) handleRemove(w http.ResponseWriter, r *http.Request) {
	name := nameParam(r)
	email := r.URL.Query().Get("email")

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(name)
	if idx < 0 {
		respondDetail(w, r, http.StatusNotFound, "Activity not found")
		return
	}
	a := &s.activities[idx]
	pos := slices.Index(a.Participants, email)
	if pos < 0 {
		respondDetail(w, r, http.StatusBadRequest, "Student is not signed up for this activity")
		return
	}
	a.Participants = slices.Delete(a.Participants, pos, pos+1)

	render.JSON(w, r, messageResponse{Message: fmt.Sprintf("Removed %s from %s", email, name)})
}

func (s *Server) indexLocked(name string) int {
	return slices.IndexFunc(s.activities, func(a activity.Activity) bool { return a.Name == name })
}

// SampleActivities returns a small school catalog used across tests.
func SampleActivities() []activity.Activity {
	return []activity.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 2,
			Participants:    []string{"emma@mergington.edu"},
		},
		{
			Name:            "Art Studio",
			Description:     "Painting, drawing and mixed media",
			Schedule:        "Mondays, 4:00 PM - 5:30 PM",
			MaxParticipants: 8,
			Participants:    []string{},
		},
	}
}
