package commands

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/packcrypt/internal/config"
)

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := cobraext.NewDefaultRootCommand(version)

	root.Use = "packcrypt [flags] command [flags]"
	root.Short = "Resource pack encryption utility"
	root.Long = `Encrypts and decrypts resource and behavior packs in the contents.json container format.
Every file gets its own key, the list of keys is sealed with a master key.
The manifest and pack icons stay readable so that the pack can still be identified.

Flags can also be set through PACKCRYPT_<FLAG> environment variables.`

	flags := root.PersistentFlags()

	flags.BoolP("show", "s", false, "Show the configuration and exit")
	flags.IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	flags.BoolP("quiet", "q", false, "Suppress non-error output")
	flags.BoolP("verbose", "v", false, "Print details about every pack")
	flags.Bool("debug", false, "Print debug output")
	flags.Bool("stats", false, "Print a summary after processing")
	flags.Bool("dry", false, "List what would be processed without writing anything")
	flags.Bool("delete", false, "Delete the original pack after successful processing")
	flags.Bool("preserve-timestamps", false, "Copy the modification time of the input to the outputs")
	flags.Bool("progress", false, "Show a spinner while packs are processed")

	flags.StringP("key", "k", "", "Master key (32 characters)")
	flags.StringP("key-file", "f", "", "Path to a file holding the master key")

	flags.StringSliceP("exclude", "e", nil, "Additional patterns of files stored unencrypted")
	flags.String("exclude-from", "", "JSONC file with a list of patterns of files stored unencrypted")
	flags.StringSlice("ignore", nil, "Patterns of pack files to skip when walking directories")

	flags.String("encrypt-ext", ".encrypted", "Suffix inserted before the extension of encrypted packs")
	flags.String("decrypt-ext", ".decrypted", "Suffix inserted before the extension of decrypted packs, after stripping the encrypted suffix")

	root.AddCommand(
		NewEncryptCommand(cfg),
		NewDecryptCommand(cfg),
		NewInspectCommand(cfg),
		NewKeygenCommand(),
	)

	return root
}
