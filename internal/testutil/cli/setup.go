package cli

import (
	"context"
	"io"
	"testing"

	"github.com/thenoetrevino/termllo/internal/app"
	"github.com/thenoetrevino/termllo/internal/config"
	"github.com/thenoetrevino/termllo/internal/database"
	"github.com/thenoetrevino/termllo/internal/logging"
	"github.com/thenoetrevino/termllo/internal/testutil"
)

// SetupCLITest creates an App over a fake remote holding the sample board and
// an in-memory snapshot cache.
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) (*app.App, *testutil.FakeRemote) {
	t.Helper()

	remote := testutil.NewFakeRemote()
	testutil.SampleBoard(remote)

	cfg := config.Default()
	cfg.Cache.Path = database.MemoryPath

	appInstance, err := app.New(context.Background(), cfg,
		app.WithRemote(remote),
		app.WithLogger(logging.New(io.Discard, false)))
	if err != nil {
		t.Fatalf("Failed to create app: %v", err)
	}
	t.Cleanup(func() { _ = appInstance.Close() })

	return appInstance, remote
}
