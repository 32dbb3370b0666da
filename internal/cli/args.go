package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fyplab/fypml/pkg/fypml"
)

// RequireFiles validates that at least one file argument is provided.
// Returns a helpful error message with usage and examples if missing.
func RequireFiles(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`%w: missing required argument: <file>

Usage: %s <file>...

Example:
  %s figures/fig1.fyp`, fypml.ErrUsage, cmd.UseLine(), cmd.CommandPath())
	}
	return nil
}

// RequireOneFile validates that exactly one file argument is provided.
func RequireOneFile(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`%w: missing required argument: <file>

Usage: %s <file>

Example:
  %s figures/fig1.fyp`, fypml.ErrUsage, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: accepts 1 arg(s), received %d", fypml.ErrUsage, len(args))
	}
	return nil
}
