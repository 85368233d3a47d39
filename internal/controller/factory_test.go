package controller

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func TestNewUI(t *testing.T) {
	tests := []struct {
		name   string
		useTTY bool
		check  func(UI) bool
	}{
		{name: "terminal", useTTY: true, check: func(ui UI) bool { _, ok := ui.(*TUI); return ok }},
		{name: "pipe", useTTY: false, check: func(ui UI) bool { _, ok := ui.(*SimpleUI); return ok }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{}
			cmd.SetOut(&bytes.Buffer{})

			if ui := NewUI(cmd, tt.useTTY); !tt.check(ui) {
				t.Errorf("NewUI(%v) returned %T", tt.useTTY, ui)
			}
		})
	}
}

func TestIsTTY(t *testing.T) {
	regular, err := os.Create(filepath.Join(t.TempDir(), "annogen.out"))
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	defer regular.Close()

	closed, err := os.Create(filepath.Join(t.TempDir(), "closed.out"))
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	closed.Close()

	if IsTTY(regular) {
		t.Errorf("IsTTY(regular file) = true, want false")
	}

	if IsTTY(closed) {
		t.Errorf("IsTTY(closed file) = true, want false")
	}

	if IsTTY(&bytes.Buffer{}) {
		t.Errorf("IsTTY(buffer) = true, want false")
	}

	devNull, err := os.Open(os.DevNull)
	if err != nil {
		t.Skipf("%s not available", os.DevNull)
	}
	defer devNull.Close()

	// /dev/null is a character device, which is all IsTTY checks.
	if !IsTTY(devNull) {
		t.Errorf("IsTTY(%s) = false, want true", os.DevNull)
	}
}
