package commands_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/packcrypt/internal/commands"
	"github.com/idelchi/packcrypt/internal/config"
)

// The root command binds its flags into the global viper instance,
// so these tests run sequentially and reset it first.

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	var out bytes.Buffer

	root := commands.NewRootCommand(&config.Config{}, "test")
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.ExecuteContext(t.Context())

	return out.String(), err
}

// captureStdout returns what fn wrote to os.Stdout.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("creating pipe: %v", err)
	}

	orig := os.Stdout
	os.Stdout = w

	fn()

	os.Stdout = orig

	if err := w.Close(); err != nil {
		t.Fatalf("closing pipe: %v", err)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("reading pipe: %v", err)
	}

	return string(data)
}

func TestKeygen(t *testing.T) { //nolint:paralleltest // uses the global viper instance
	out, err := execute(t, "keygen", "-n", "2")
	if err != nil {
		t.Fatalf("keygen: %v", err)
	}

	keys := strings.Fields(out)
	if len(keys) != 2 {
		t.Fatalf("got %d keys, want 2:\n%s", len(keys), out)
	}

	if keys[0] == keys[1] {
		t.Error("keygen printed the same key twice")
	}

	if _, err := execute(t, "keygen", "-n", "0"); err == nil {
		t.Error("expected error for zero keys")
	}
}

func TestShowMasksKey(t *testing.T) { //nolint:paralleltest // redirects os.Stdout
	const key = "supersecretsupersecretsupersecre"

	var err error

	shown := captureStdout(t, func() {
		_, err = execute(t, "encrypt", "--show", "--key", key, "-j", "3", "world.mcpack")
	})

	if !errors.Is(err, cobraext.ErrExitGracefully) {
		t.Fatalf("error = %v, want %v", err, cobraext.ErrExitGracefully)
	}

	if strings.Contains(shown, key) {
		t.Errorf("--show leaked the key:\n%s", shown)
	}

	for _, want := range []string{"Parallel", "3", "world.mcpack"} {
		if !strings.Contains(shown, want) {
			t.Errorf("--show output missing %q:\n%s", want, shown)
		}
	}
}

func TestEnvironmentOverridesDefaults(t *testing.T) { //nolint:paralleltest // sets environment variables
	t.Setenv("PACKCRYPT_PARALLEL", "0")

	_, err := execute(t, "encrypt", "--key", "k", "world.mcpack")
	if !errors.Is(err, config.ErrUsage) || !strings.Contains(err.Error(), "--parallel") {
		t.Fatalf("error = %v, want a usage error for --parallel", err)
	}
}

func TestDecryptRequiresKey(t *testing.T) { //nolint:paralleltest // uses the global viper instance
	_, err := execute(t, "decrypt", "world.encrypted.mcpack")
	if !errors.Is(err, config.ErrUsage) || !strings.Contains(err.Error(), "--key") {
		t.Fatalf("error = %v, want missing key", err)
	}
}

func TestExclusiveKeySources(t *testing.T) { //nolint:paralleltest // uses the global viper instance
	_, err := execute(t, "encrypt", "-k", "a", "-f", "a.key", "world.mcpack")
	if !errors.Is(err, config.ErrUsage) || !strings.Contains(err.Error(), "mutually exclusive") {
		t.Fatalf("error = %v, want mutually exclusive", err)
	}
}
