package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/packcrypt/internal/config"
	"github.com/idelchi/packcrypt/internal/logic"
)

// NewInspectCommand creates a new cobra command for the inspect subcommand.
func NewInspectCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [flags] [packs/directories...]",
		Short: "Show the header of encrypted packs",
		Long: `Show the format version, signature and content identifier of encrypted packs
together with the files stored in clear. With a key the full contents list is shown.`,
		Args:    cobra.ArbitraryArgs,
		PreRunE: preRun(cfg),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return logic.RunInspect(cfg, logger(cmd, cfg))
		},
	}
}
