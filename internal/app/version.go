package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

// appVersion is injected from main (set by goreleaser via ldflags).
var appVersion = "dev"

// SetVersion records the build version for the version command.
func SetVersion(v string) {
	if v != "" {
		appVersion = v
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the librec version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("librec %s\n", appVersion)
		},
	}
}
