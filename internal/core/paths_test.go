package core

import (
	"path/filepath"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in   string
		want string
	}{
		{"~", home},
		{"~/scores.db", filepath.Join(home, "scores.db")},
		{"/tmp/scores.db", "/tmp/scores.db"},
		{"relative/scores.db", "relative/scores.db"},
		{"~other/scores.db", "~other/scores.db"},
		{"", ""},
	}

	for _, tt := range tests {
		got, err := ExpandHome(tt.in)
		if err != nil {
			t.Fatalf("ExpandHome(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ExpandHome(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestDataPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := DataPath("configs", "brickfall.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, ".brickfall", "configs", "brickfall.yaml"); got != want {
		t.Errorf("DataPath = %q, expected %q", got, want)
	}
}
