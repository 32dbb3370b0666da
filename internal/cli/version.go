package cli

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/fyplab/fypml/internal/schema"
	"github.com/fyplab/fypml/pkg/fypml"
)

// Build-time variables set via ldflags
var (
	commit = "unknown"
	date   = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		printVersionInfo()
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// printVersionInfo prints version information.
// Version string goes to stdout for pipeline consumption.
// Decorative content goes to stderr.
func printVersionInfo() {
	fmt.Printf("fypml %s (%s, %s) %s/%s\n", fypml.AppVersion, commit, date, runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(os.Stderr, "FypML figure document tool, schema version %d\n", schema.CurrentVersion)
}
