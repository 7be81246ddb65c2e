package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/webshim/internal/domain/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "webshim %s (%s, built %s, %s)\n", buildInfo.Version, buildInfo.Commit, buildInfo.BuildDate, buildInfo.GoVersion)
		fmt.Fprintln(out, build.RepoURL())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
