package tui

import (
	"context"
	"io"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/termllo/internal/app"
	"github.com/thenoetrevino/termllo/internal/config"
	"github.com/thenoetrevino/termllo/internal/logging"
	"github.com/thenoetrevino/termllo/internal/testutil"
)

// setupTestModel creates a model over the sample board with the initial load applied.
// Moves stay pending for the whole test unless flushed.
func setupTestModel(t *testing.T) (Model, *testutil.FakeRemote) {
	t.Helper()

	remote := testutil.NewFakeRemote()
	testutil.SampleBoard(remote)

	cfg := config.Default()
	cfg.Cache.Disabled = true
	cfg.Sync.MoveDebounce = time.Hour

	a, err := app.New(context.Background(), cfg,
		app.WithRemote(remote),
		app.WithLogger(logging.New(io.Discard, false)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	m := InitialModel(context.Background(), a)
	m = runCmd(m, m.fillCmd())
	m = updateModel(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, remote
}

// updateModel updates the model with a message and returns the updated model
func updateModel(m Model, msg tea.Msg) Model {
	updated, _ := m.Update(msg)
	return updated.(Model)
}

// runCmd executes cmd synchronously and feeds its message back to the model
func runCmd(m Model, cmd tea.Cmd) Model {
	if cmd == nil {
		return m
	}
	return updateModel(m, cmd())
}

// keyPress builds a key press for a printable key
func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Code: r, Text: string(r)})
}

// specialKey builds a key press for a non printable key
func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Code: code})
}

// ctrlKey builds a ctrl+<r> key press
func ctrlKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Code: r, Mod: tea.ModCtrl})
}

// sendKeys sends key presses to the model sequentially
func sendKeys(m Model, keys ...tea.Msg) Model {
	for _, k := range keys {
		m = updateModel(m, k)
	}
	return m
}

// latestNotification returns the message of the newest notification
func latestNotification(m Model) string {
	n, _ := m.NotificationState.Latest()
	return n.Message
}
