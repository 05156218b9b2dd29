package command

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version and BuildDate are filled in by `go build -ldflags="-X ..."`,
// the same convention cmd/cayley/cayley.go uses for its own build
// stamping.
var (
	Version   string
	BuildDate string
)

// NewVersionCmd prints the build version, or "dev" when unset.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information.",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if Version == "" {
				fmt.Fprintln(out, "argatransform dev")
				return nil
			}
			fmt.Fprintln(out, "argatransform", Version, "built", BuildDate)
			return nil
		},
	}
}
