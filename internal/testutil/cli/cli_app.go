package cli

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/termllo/internal/app"
	termllocli "github.com/thenoetrevino/termllo/internal/cli"
	"github.com/thenoetrevino/termllo/internal/testutil"
)

// ExecuteCLICommand executes a CLI command with a test app instance.
// The app is injected through the command context so the command never
// builds its own from the config file.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	cmd.SetContext(termllocli.WithApp(context.Background(), testApp))
	return testutil.ExecuteCommand(t, cmd, args)
}
