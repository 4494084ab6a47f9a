package tui

import (
	"github.com/blackwell-systems/librec/internal/util"
	"github.com/spf13/cobra"
)

// ShouldUseTUI returns true if the command should use interactive TUI mode.
// TUI mode is enabled when:
// - stdout is a TTY (not piped or redirected)
// - --no-interactive flag is not set
// - --json is not set (indicates scripting intent)
func ShouldUseTUI(cmd *cobra.Command) bool {
	// Must be running in a terminal
	if !util.IsTTY() {
		return false
	}

	// User explicitly disabled interactive mode
	noInteractive, _ := cmd.Flags().GetBool("no-interactive")
	if noInteractive {
		return false
	}

	// JSON output means the caller is a script, not a person
	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		return false
	}

	return true
}
