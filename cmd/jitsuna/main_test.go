package main

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/jitsuna/internal/storage"
)

func TestLogDir(t *testing.T) {
	sqliteStore, err := storage.New("/var/lib/jitsuna/jitsuna.db")
	if err != nil {
		t.Fatalf("storage.New failed: %v", err)
	}
	if got := logDir(sqliteStore); got != "/var/lib/jitsuna" {
		t.Errorf("logDir(sqlite) = %q, want /var/lib/jitsuna", got)
	}

	pgStore, err := storage.New("postgres://jitsuna@localhost/jitsuna")
	if err != nil {
		t.Fatalf("storage.New failed: %v", err)
	}
	if got := logDir(pgStore); strings.Contains(got, "postgres") {
		t.Errorf("logDir(postgres) = %q, want the default config directory", got)
	}
}

// TestEndToEndWorkflow drives a built binary through the chat scenario.
// Set JITSUNA_BIN to the binary's path to run it.
func TestEndToEndWorkflow(t *testing.T) {
	bin := os.Getenv("JITSUNA_BIN")
	if bin == "" {
		t.Skip("JITSUNA_BIN not set, skipping end-to-end test")
	}

	home := t.TempDir()
	dbPath := filepath.Join(home, "jitsuna", "jitsuna.db")

	env := []string{"HOME=" + home, "PATH=" + os.Getenv("PATH"), "JITSUNA_DB=" + dbPath}

	runCLI := func(args ...string) string {
		t.Helper()
		cmd := exec.Command(bin, args...)
		cmd.Env = env
		cmd.Dir = home
		var out bytes.Buffer
		cmd.Stdout = &out
		cmd.Stderr = &out
		if err := cmd.Run(); err != nil {
			t.Fatalf("jitsuna %s failed: %v\n%s", strings.Join(args, " "), err, out.String())
		}
		return out.String()
	}

	runCLI("init")
	runCLI("user", "register", "42", "--username", "reader")
	runCLI("habit", "add", "42", "Read")
	runCLI("habit", "add", "42", "Exercise")

	list := runCLI("habit", "list", "42")
	var readID string
	for _, line := range strings.Split(list, "\n") {
		if strings.Contains(line, " Read ") {
			readID = strings.Trim(line[strings.LastIndex(line, "(")+1:], ")")
		}
	}
	if readID == "" {
		t.Fatalf("could not find Read in habit list:\n%s", list)
	}

	runCLI("habit", "toggle", "42", readID, "--award", "5")

	if got := runCLI("xp", "show", "42"); !strings.Contains(got, "level 1 (5 XP)") {
		t.Errorf("xp show = %q, want level 1 (5 XP)", got)
	}
	list = runCLI("habit", "list", "42")
	if !strings.Contains(list, "[x] Read") || !strings.Contains(list, "[ ] Exercise") {
		t.Errorf("habit list after toggle:\n%s", list)
	}

	runCLI("reminder", "set", "42", "9")
	if got := runCLI("reminder", "due", "9"); strings.TrimSpace(got) != "42" {
		t.Errorf("reminder due = %q, want 42", got)
	}

	if _, err := os.Stat(filepath.Join(home, "jitsuna", "logs", "jitsuna.log")); err != nil {
		t.Errorf("log file missing: %v", err)
	}
}
