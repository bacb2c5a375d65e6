package tests

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func buildBinary(t *testing.T) string {
	t.Helper()
	repoRoot, err := filepath.Abs("..")
	if err != nil {
		t.Fatalf("resolve repo root: %v", err)
	}
	binPath := filepath.Join(t.TempDir(), "bmrcalc")
	cmd := exec.Command("go", "build", "-o", binPath, ".")
	cmd.Dir = repoRoot
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("build bmrcalc binary: %v\n%s", err, string(out))
	}
	return binPath
}

func runCLI(t *testing.T, binPath, dbPath string, args ...string) (string, string, int) {
	t.Helper()
	allArgs := append([]string{"--db", dbPath}, args...)
	cmd := exec.Command(binPath, allArgs...)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	if err == nil {
		return stdout.String(), stderr.String(), 0
	}
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("run bmrcalc command: %v", err)
	}
	return stdout.String(), stderr.String(), exitErr.ExitCode()
}

func TestCalculateAndHistoryFlow(t *testing.T) {
	binPath := buildBinary(t)
	dbPath := filepath.Join(t.TempDir(), "bmrcalc.db")

	_, stderr, exit := runCLI(t, binPath, dbPath, "init")
	if exit != 0 {
		t.Fatalf("init failed: exit=%d stderr=%s", exit, stderr)
	}

	stdout, stderr, exit := runCLI(t, binPath, dbPath,
		"calculate",
		"--weight", "70",
		"--height", "170",
		"--age", "30",
		"--gender", "male",
		"--activity", "moderate",
		"--formula", "mifflin",
	)
	if exit != 0 {
		t.Fatalf("calculate failed: exit=%d stderr=%s", exit, stderr)
	}
	if !strings.Contains(stdout, "BMR: 1617.50") {
		t.Fatalf("expected BMR 1617.50 in output, got:\n%s", stdout)
	}
	if !strings.Contains(stdout, "TDEE: 2507.13") {
		t.Fatalf("expected TDEE 2507.13 in output, got:\n%s", stdout)
	}
	if !strings.Contains(stdout, "Saved calculation 1") {
		t.Fatalf("expected saved id in output, got:\n%s", stdout)
	}

	stdout, stderr, exit = runCLI(t, binPath, dbPath, "history", "list")
	if exit != 0 {
		t.Fatalf("history list failed: exit=%d stderr=%s", exit, stderr)
	}
	if !strings.Contains(stdout, "1617.50") {
		t.Fatalf("expected saved record in history, got:\n%s", stdout)
	}

	stdout, stderr, exit = runCLI(t, binPath, dbPath, "history", "show", "1")
	if exit != 0 {
		t.Fatalf("history show failed: exit=%d stderr=%s", exit, stderr)
	}
	if !strings.Contains(stdout, "Recommendations:") {
		t.Fatalf("expected interpretation in show output, got:\n%s", stdout)
	}

	stdout, stderr, exit = runCLI(t, binPath, dbPath, "stats")
	if exit != 0 {
		t.Fatalf("stats failed: exit=%d stderr=%s", exit, stderr)
	}
	if !strings.Contains(stdout, "Calculations: 1") {
		t.Fatalf("expected one calculation in stats, got:\n%s", stdout)
	}

	exportPath := filepath.Join(t.TempDir(), "history.json")
	_, stderr, exit = runCLI(t, binPath, dbPath, "history", "export", "--out", exportPath)
	if exit != 0 {
		t.Fatalf("history export failed: exit=%d stderr=%s", exit, stderr)
	}
	data, err := os.ReadFile(exportPath)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.Contains(string(data), `"formula_type": "mifflin"`) {
		t.Fatalf("expected formula tag in export, got:\n%s", data)
	}

	_, stderr, exit = runCLI(t, binPath, dbPath, "history", "clear")
	if exit != 0 {
		t.Fatalf("history clear failed: exit=%d stderr=%s", exit, stderr)
	}
	stdout, _, _ = runCLI(t, binPath, dbPath, "history", "list")
	if !strings.Contains(stdout, "History is empty") {
		t.Fatalf("expected empty history after clear, got:\n%s", stdout)
	}
}

func TestCalculateRejectsInvalidInput(t *testing.T) {
	binPath := buildBinary(t)
	dbPath := filepath.Join(t.TempDir(), "bmrcalc.db")

	stdout, _, exit := runCLI(t, binPath, dbPath,
		"calculate",
		"--weight", "20",
		"--height", "170",
		"--age", "30",
		"--gender", "male",
	)
	if exit == 0 {
		t.Fatalf("expected invalid weight to fail")
	}
	if !strings.Contains(stdout, "Errors:") {
		t.Fatalf("expected formatted errors, got:\n%s", stdout)
	}

	_, _, exit = runCLI(t, binPath, dbPath,
		"calculate",
		"--weight", "70",
		"--height", "170",
		"--age", "17.5",
		"--gender", "male",
	)
	if exit == 0 {
		t.Fatalf("expected fractional age to fail")
	}
}

func TestCalculateWarnsButProceeds(t *testing.T) {
	binPath := buildBinary(t)
	dbPath := filepath.Join(t.TempDir(), "bmrcalc.db")

	stdout, stderr, exit := runCLI(t, binPath, dbPath,
		"calculate",
		"--weight", "70",
		"--height", "170",
		"--age", "72",
		"--gender", "female",
		"--no-save",
	)
	if exit != 0 {
		t.Fatalf("expected warning-only input to succeed: exit=%d stderr=%s", exit, stderr)
	}
	if !strings.Contains(stdout, "Warnings:") {
		t.Fatalf("expected warnings in output, got:\n%s", stdout)
	}
	if !strings.Contains(stdout, "BMR:") {
		t.Fatalf("expected calculation despite warnings, got:\n%s", stdout)
	}
}

func TestProfileAndConfigFlow(t *testing.T) {
	binPath := buildBinary(t)
	dbPath := filepath.Join(t.TempDir(), "bmrcalc.db")

	stdout, stderr, exit := runCLI(t, binPath, dbPath,
		"profile", "add", "--name", "Anna", "--role", "patient",
	)
	if exit != 0 {
		t.Fatalf("profile add failed: exit=%d stderr=%s", exit, stderr)
	}
	fields := strings.Fields(stdout)
	if len(fields) < 3 {
		t.Fatalf("unexpected profile add output: %s", stdout)
	}
	userID := fields[2]

	_, stderr, exit = runCLI(t, binPath, dbPath, "config", "set", "default_user", userID)
	if exit != 0 {
		t.Fatalf("config set failed: exit=%d stderr=%s", exit, stderr)
	}
	_, stderr, exit = runCLI(t, binPath, dbPath, "config", "set", "default_formula", "harris")
	if exit != 0 {
		t.Fatalf("config set formula failed: exit=%d stderr=%s", exit, stderr)
	}
	_, _, exit = runCLI(t, binPath, dbPath, "config", "set", "default_formula", "bogus")
	if exit == 0 {
		t.Fatalf("expected unknown formula tag to be rejected")
	}

	stdout, stderr, exit = runCLI(t, binPath, dbPath,
		"calculate",
		"--weight", "70",
		"--height", "170",
		"--age", "30",
		"--gender", "male",
	)
	if exit != 0 {
		t.Fatalf("calculate with defaults failed: exit=%d stderr=%s", exit, stderr)
	}
	if !strings.Contains(stdout, "Formula: harris") {
		t.Fatalf("expected configured default formula, got:\n%s", stdout)
	}

	stdout, stderr, exit = runCLI(t, binPath, dbPath, "history", "list", "--user", userID)
	if exit != 0 {
		t.Fatalf("history list by user failed: exit=%d stderr=%s", exit, stderr)
	}
	if !strings.Contains(stdout, userID) {
		t.Fatalf("expected calculation tagged with default user, got:\n%s", stdout)
	}
}

func TestMain(m *testing.M) {
	os.Exit(m.Run())
}
