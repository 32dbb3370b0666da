package cli

import (
	"errors"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/fyplab/fypml/internal/config"
	"github.com/fyplab/fypml/internal/logging"
	"github.com/fyplab/fypml/internal/report"
	"github.com/fyplab/fypml/pkg/fypml"
)

// runContext bundles the per-invocation plumbing every command needs.
type runContext struct {
	log     fypml.Logger
	cfg     *config.ProjectConfig
	printer *report.Printer
}

// newRunContext builds the logger, loads project configuration from the
// working directory (absence is fine), and stamps the invocation with a run
// ID so verbose logs from concurrent invocations can be told apart.
func newRunContext(cmd *cobra.Command) (*runContext, error) {
	log := logging.NewConsoleLogger(getVerboseFlag(cmd))
	log.Verbose("Run %s", uuid.New())

	cfg, err := config.Load(".")
	if errors.Is(err, config.ErrConfigNotFound) {
		cfg, err = config.Default()
	}
	if err != nil {
		return nil, err
	}

	return &runContext{
		log:     log,
		cfg:     cfg,
		printer: report.NewPrinter(),
	}, nil
}
