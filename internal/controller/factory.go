package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewUI picks the interactive TUI for terminals and the plain table output
// for pipes, files and CI logs. Both write to cmd's output stream.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a character device such as a terminal.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	info, err := file.Stat()
	if err != nil {
		return false
	}

	return info.Mode()&os.ModeCharDevice != 0
}
