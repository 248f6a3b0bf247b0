// Command packcrypt encrypts and decrypts resource packs in the contents.json container format.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/packcrypt/internal/commands"
	"github.com/idelchi/packcrypt/internal/config"
)

// version is set at build time.
var version = "unknown"

func main() {
	cfg := &config.Config{}

	if err := commands.NewRootCommand(cfg, version).Execute(); err != nil {
		if errors.Is(err, cobraext.ErrExitGracefully) {
			return
		}

		fmt.Fprintln(os.Stderr, err.Error())

		os.Exit(1)
	}
}
