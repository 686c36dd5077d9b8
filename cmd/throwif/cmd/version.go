package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/throwif/pkg/core/version"
)

func newVersionCmd() *cobra.Command {
	var asJSON bool

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get("lint")
			out := cmd.OutOrStdout()

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}

			fmt.Fprintf(out, "throwif v%s\n", info.Version)
			fmt.Fprintf(out, "  Library:    %s\n", info.Library)
			fmt.Fprintf(out, "  Git Commit: %s\n", info.Commit)
			fmt.Fprintf(out, "  Build Date: %s\n", info.BuildDate)
			fmt.Fprintf(out, "  Go Version: %s\n", info.GoVersion)
			fmt.Fprintf(out, "  OS/Arch:    %s\n", info.Platform)
			return nil
		},
	}

	versionCmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")

	return versionCmd
}
