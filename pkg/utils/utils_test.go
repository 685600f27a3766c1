package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"My Cool/App!", "My_Cool_App_"},
		{"projet_test", "projet_test"},
		{"a-b_c9", "a-b_c9"},
		{"café", "caf_"},
		{"../etc", "___etc"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := SanitizeName(tt.in); got != tt.want {
				t.Errorf("SanitizeName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeNamePreservesRuneCount(t *testing.T) {
	in := "Nom du projet: été 2026!"
	got := SanitizeName(in)
	if len([]rune(got)) != len([]rune(in)) {
		t.Errorf("SanitizeName(%q) = %q, rune count %d, want %d", in, got, len([]rune(got)), len([]rune(in)))
	}
}

func TestEnsureDirAndExists(t *testing.T) {
	fs := afero.NewMemMapFs()

	if DirExists(fs, "/p/src") {
		t.Fatal("directory should not exist yet")
	}
	if err := EnsureDir(fs, "/p/src"); err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}
	// Second call must be a no-op.
	if err := EnsureDir(fs, "/p/src"); err != nil {
		t.Fatalf("EnsureDir on existing dir: %v", err)
	}
	if !DirExists(fs, "/p/src") {
		t.Error("expected /p/src to exist")
	}

	if err := afero.WriteFile(fs, "/p/README.md", []byte("# p"), 0644); err != nil {
		t.Fatal(err)
	}
	if !FileExists(fs, "/p/README.md") {
		t.Error("expected README.md to exist")
	}
	if FileExists(fs, "/p/src") {
		t.Error("a directory is not a file")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	if got := ExpandPath("~"); got != home {
		t.Errorf("ExpandPath(~) = %q, want %q", got, home)
	}
	if got, want := ExpandPath("~/projects"), filepath.Join(home, "projects"); got != want {
		t.Errorf("ExpandPath(~/projects) = %q, want %q", got, want)
	}

	t.Setenv("PROJECTGEN_TEST_DIR", "/tmp/x")
	if got := ExpandPath("$PROJECTGEN_TEST_DIR/y"); got != "/tmp/x/y" {
		t.Errorf("ExpandPath($PROJECTGEN_TEST_DIR/y) = %q, want %q", got, "/tmp/x/y")
	}
}
