package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idelchi/packcrypt/internal/logic"
)

// NewKeygenCommand creates a new cobra command printing fresh master keys.
func NewKeygenCommand() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:     "keygen",
		Aliases: []string{"gen"},
		Short:   "Generate master keys",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 1 {
				return fmt.Errorf("count must be at least 1, got %d", count)
			}

			return logic.RunKeygen(cmd.OutOrStdout(), count)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of keys to generate")

	return cmd
}
