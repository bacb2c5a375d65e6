package bmrcalc

import (
	"bytes"
	"path/filepath"
	"testing"
)

func TestRootHelp(t *testing.T) {
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"--help"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute root help: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected help output")
	}
}

func TestInitCommandIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bmrcalc.db")
	for i := 0; i < 2; i++ {
		buf := &bytes.Buffer{}
		rootCmd.SetOut(buf)
		rootCmd.SetErr(buf)
		rootCmd.SetArgs([]string{"--db", path, "init"})
		if err := rootCmd.Execute(); err != nil {
			t.Fatalf("init run %d failed: %v", i+1, err)
		}
		if !bytes.Contains(buf.Bytes(), []byte(path)) {
			t.Fatalf("expected resolved path %q in output, got:\n%s", path, buf.String())
		}
	}
}

func TestLevelsCommandListsEveryLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"levels"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute levels: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"sedentary", "light", "moderate", "very_active", "extra_active", "mifflin", "harris"} {
		if !bytes.Contains([]byte(out), []byte(want)) {
			t.Fatalf("expected %q in levels output, got:\n%s", want, out)
		}
	}
}
