package reload

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// startWatcher watches a fresh config dir with a themes subdirectory and
// returns the paths and a channel that receives one value per change.
func startWatcher(t *testing.T) (configFile, themesDir string, changes <-chan struct{}) {
	t.Helper()

	dir := t.TempDir()
	configFile = filepath.Join(dir, "config.yaml")
	themesDir = filepath.Join(dir, "themes")
	if err := os.MkdirAll(themesDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(configFile, []byte("board:\n  title: Activities\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ch := make(chan struct{}, 16)
	w, err := New(configFile, themesDir, func() { ch <- struct{}{} }, WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	w.Start()
	t.Cleanup(w.Stop)

	return configFile, themesDir, ch
}

func waitForChange(t *testing.T, changes <-chan struct{}) {
	t.Helper()
	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatcherReportsConfigEdits(t *testing.T) {
	configFile, _, changes := startWatcher(t)

	if err := os.WriteFile(configFile, []byte("board:\n  title: Spring\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	waitForChange(t, changes)
}

func TestWatcherReportsThemeEdits(t *testing.T) {
	_, themesDir, changes := startWatcher(t)

	if err := os.WriteFile(filepath.Join(themesDir, "school.yaml"), []byte("name: School\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	waitForChange(t, changes)
}

func TestWatcherDebouncesBursts(t *testing.T) {
	configFile, _, changes := startWatcher(t)

	for i := range 5 {
		content := []byte("board:\n  title: Draft " + string(rune('A'+i)) + "\n")
		if err := os.WriteFile(configFile, content, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	waitForChange(t, changes)

	select {
	case <-changes:
		t.Error("a burst of writes should report one change")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestRelevant(t *testing.T) {
	w := &Watcher{configFile: "/cfg/signup/config.yaml", themesDir: "/cfg/signup/themes"}

	tests := []struct {
		path string
		want bool
	}{
		{"/cfg/signup/config.yaml", true},
		{"/cfg/signup/other.yaml", false},
		{"/cfg/signup/config.yaml.swp", false},
		{"/cfg/signup/themes/school.yaml", true},
		{"/cfg/signup/themes/school.yml", true},
		{"/cfg/signup/themes/notes.txt", false},
		{"/cfg/signup/themes/nested/school.yaml", false},
	}
	for _, tt := range tests {
		if got := w.Relevant(tt.path); got != tt.want {
			t.Errorf("Relevant(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestNewSkipsMissingDirectories(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "absent")
	w, err := New(filepath.Join(dir, "config.yaml"), filepath.Join(dir, "themes"), func() {})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	w.Stop()
	w.Stop()
}
