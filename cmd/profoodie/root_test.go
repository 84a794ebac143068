package profoodie

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, dbFile, cfgFile string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	full := append([]string{"--db", dbFile, "--config", cfgFile}, args...)
	rootCmd.SetArgs(full)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("command %v: %v\noutput: %s", args, err, out.String())
	}
	return out.String()
}

func TestLogListRemoveFlow(t *testing.T) {
	dir := t.TempDir()
	dbFile := filepath.Join(dir, "profoodie.db")
	cfgFile := filepath.Join(dir, "config.yaml")

	out := runCommand(t, dbFile, cfgFile, "log",
		"--name", "Oatmeal", "--calories", "300", "--protein", "10",
		"--carbs", "50", "--fat", "5", "--slot", "breakfast", "--date", "2024-01-01")
	if !strings.Contains(out, "Logged Oatmeal") {
		t.Fatalf("unexpected log output: %s", out)
	}

	out = runCommand(t, dbFile, cfgFile, "meals", "list", "--date", "2024-01-01")
	if !strings.Contains(out, "Oatmeal") {
		t.Fatalf("expected Oatmeal in list output: %s", out)
	}

	out = runCommand(t, dbFile, cfgFile, "today", "--date", "2024-01-01")
	if !strings.Contains(out, "300") {
		t.Fatalf("expected calories in today output: %s", out)
	}
}

func TestGoalShowDefaults(t *testing.T) {
	dir := t.TempDir()
	out := runCommand(t, filepath.Join(dir, "db"), filepath.Join(dir, "cfg.yaml"), "goal", "show")
	if !strings.Contains(out, "Calories: 2000 kcal") {
		t.Fatalf("expected default goals, got: %s", out)
	}
	if !strings.Contains(out, "complete onboarding") {
		t.Fatalf("expected onboarding hint, got: %s", out)
	}
}
