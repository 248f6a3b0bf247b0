package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/packcrypt/internal/config"
	"github.com/idelchi/packcrypt/internal/logic"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
func NewDecryptCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "decrypt [flags] [packs/directories...]",
		Aliases: []string{"dec"},
		Short:   "Decrypt packs",
		Args:    cobra.ArbitraryArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Decrypt = true
			cfg.RequireKey = true

			return preRun(cfg)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return logic.Run(cmd.Context(), cfg, logger(cmd, cfg))
		},
	}
}
