package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/packcrypt/internal/config"
	"github.com/idelchi/packcrypt/internal/logic"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "encrypt [flags] [packs/directories...]",
		Aliases: []string{"enc"},
		Short:   "Encrypt packs",
		Long: `Encrypt packs. Without --key or --key-file a master key is generated for the run
and saved next to every encrypted pack.`,
		Args:    cobra.ArbitraryArgs,
		PreRunE: preRun(cfg),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return logic.Run(cmd.Context(), cfg, logger(cmd, cfg))
		},
	}

	cmd.Flags().Bool("save-key", true, "Write the master key to <pack><encrypt-ext>.key")

	return cmd
}
