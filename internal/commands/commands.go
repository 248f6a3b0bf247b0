package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/packcrypt/internal/config"
	"github.com/idelchi/packcrypt/internal/logging"
)

// preRun returns a PreRunE handler that resolves positional args into cfg.Files
// and validates the configuration.
func preRun(cfg *config.Config) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		if len(args) == 0 {
			cfg.Files = []string{"."}
		} else {
			cfg.Files = args
		}

		return cobraext.Validate(cfg, cfg)
	}
}

// logger builds the logger for a command from the output flags.
func logger(cmd *cobra.Command, cfg *config.Config) logging.Logger {
	return logging.Logger{
		Verbose: cfg.Verbose,
		Debug:   cfg.Debug,
		Quiet:   cfg.Quiet,
		Out:     cmd.OutOrStdout(),
		Err:     cmd.ErrOrStderr(),
	}
}
