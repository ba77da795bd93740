package app

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/termllo/internal/config"
	"github.com/thenoetrevino/termllo/internal/database"
	"github.com/thenoetrevino/termllo/internal/services/card"
	"github.com/thenoetrevino/termllo/internal/testutil"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Cache.Path = database.MemoryPath
	cfg.Sync.MoveDebounce = time.Hour
	return cfg
}

func newTestApp(t *testing.T, cfg *config.Config) (*App, *testutil.FakeRemote) {
	t.Helper()
	remote := testutil.NewFakeRemote()
	testutil.SampleBoard(remote)

	a, err := New(context.Background(), cfg,
		WithRemote(remote),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)
	return a, remote
}

func TestNew(t *testing.T) {
	a, _ := newTestApp(t, testConfig())
	defer func() { _ = a.Close() }()

	assert.NotNil(t, a.Store)
	assert.NotNil(t, a.Loader)
	assert.NotNil(t, a.CardService)
	assert.NotNil(t, a.Cache)
}

func TestNewWithoutCache(t *testing.T) {
	cfg := testConfig()
	cfg.Cache.Disabled = true

	a, _ := newTestApp(t, cfg)
	defer func() { _ = a.Close() }()
	assert.Nil(t, a.Cache)

	require.NoError(t, a.Loader.Fill(context.Background(), 0))
	assert.Equal(t, []string{"x", "y"}, a.Store.CardNames("A"))
}

func TestNewRequiresCredentials(t *testing.T) {
	cfg := testConfig()
	cfg.Trello.APIKey = ""
	cfg.Trello.Token = ""

	_, err := New(context.Background(), cfg)
	assert.ErrorIs(t, err, config.ErrMissingCredentials)
}

func TestCloseFlushesPendingMoves(t *testing.T) {
	a, remote := newTestApp(t, testConfig())
	ctx := context.Background()

	require.NoError(t, a.Loader.Fill(ctx, 0))
	_, err := a.CardService.MoveCard(card.MoveRequest{FromList: "A", FromPos: 0, ToList: "B", ToPos: 0})
	require.NoError(t, err)
	assert.Empty(t, remote.PositionUpdates())

	require.NoError(t, a.Close())
	assert.Len(t, remote.PositionUpdates(), 1)
}

func TestRefreshSendsPendingMoveFirst(t *testing.T) {
	a, remote := newTestApp(t, testConfig())
	ctx := context.Background()

	require.NoError(t, a.Loader.Fill(ctx, 0))
	_, err := a.CardService.MoveCard(card.MoveRequest{FromList: "A", FromPos: 0, ToList: "B", ToPos: 0})
	require.NoError(t, err)
	require.Equal(t, 1, a.CardService.Pending())

	require.NoError(t, a.Loader.Refresh(ctx))
	assert.Equal(t, []string{"y"}, a.Store.CardNames("A"))
	assert.Equal(t, []string{"x"}, a.Store.CardNames("B"))

	require.NoError(t, a.CardService.Flush(ctx))
	assert.Equal(t, []string{"x"}, a.Store.CardNames("B"))
	require.Len(t, remote.PositionUpdates(), 1)
	assert.Equal(t, "B", remote.PositionUpdates()[0].ListID)
}
