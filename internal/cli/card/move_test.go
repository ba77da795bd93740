package card

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/termllo/internal/cli"
	"github.com/thenoetrevino/termllo/internal/models"
	"github.com/thenoetrevino/termllo/internal/testutil"
	clitest "github.com/thenoetrevino/termllo/internal/testutil/cli"
)

func moveArgs(extra ...string) []string {
	return append([]string{"--from-list", "0", "--from-pos", "0", "--to-list", "1", "--to-pos", "0"}, extra...)
}

func TestMove_SendsPlacement(t *testing.T) {
	a, remote := clitest.SetupCLITest(t)

	out, err := clitest.ExecuteCLICommand(t, a, MoveCmd(), moveArgs("--json"))
	require.NoError(t, err)

	updates := remote.PositionUpdates()
	require.Len(t, updates, 1, "move is sent without waiting for the debounce window")
	assert.Equal(t, "x", updates[0].CardID)
	assert.Equal(t, "B", updates[0].ListID)
	assert.Equal(t, models.PositionTop, updates[0].Pos.Kind)

	result := testutil.ParseJSON(t, out)
	data := result["data"].(map[string]any)
	assert.Equal(t, "x", data["cardId"])
	assert.Equal(t, "Todo", data["fromList"])
	assert.Equal(t, "Done", data["toList"])
	assert.Equal(t, "top", data["placement"])
	assert.NotEmpty(t, data["requestId"])

	assert.Equal(t, []string{"y"}, a.Store.CardNames("A"))
	assert.Equal(t, []string{"x"}, a.Store.CardNames("B"))
}

func TestMove_WithinListToEnd(t *testing.T) {
	a, remote := clitest.SetupCLITest(t)

	_, err := clitest.ExecuteCLICommand(t, a, MoveCmd(),
		[]string{"--from-list", "0", "--from-pos", "0", "--to-list", "0", "--to-pos", "9", "--quiet"})
	require.NoError(t, err)

	updates := remote.PositionUpdates()
	require.Len(t, updates, 1)
	assert.Equal(t, models.PositionBottom, updates[0].Pos.Kind)
	assert.Equal(t, []string{"y", "x"}, a.Store.CardNames("A"))
}

func TestMove_Quiet(t *testing.T) {
	a, _ := clitest.SetupCLITest(t)

	out, err := clitest.ExecuteCLICommand(t, a, MoveCmd(), moveArgs("--quiet"))
	require.NoError(t, err)
	assert.Equal(t, "x\n", out)
}

func TestMove_UnknownList(t *testing.T) {
	a, remote := clitest.SetupCLITest(t)

	_, err := clitest.ExecuteCLICommand(t, a, MoveCmd(),
		[]string{"--from-list", "0", "--from-pos", "0", "--to-list", "7", "--to-pos", "0"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCodeFor(err))
	assert.Empty(t, remote.PositionUpdates())
}

func TestMove_NegativePosition(t *testing.T) {
	a, _ := clitest.SetupCLITest(t)

	_, err := clitest.ExecuteCLICommand(t, a, MoveCmd(),
		[]string{"--from-list", "0", "--from-pos", "0", "--to-list", "1", "--to-pos", "-1"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitValidation, cli.ExitCodeFor(err))
}

func TestMove_RemoteFailure(t *testing.T) {
	a, remote := clitest.SetupCLITest(t)
	remote.SetErr(&remote.UpdateCardPositionErr, &models.TransportError{Op: "PUT /cards/x", StatusCode: 500, Err: errors.New("server error")})

	_, err := clitest.ExecuteCLICommand(t, a, MoveCmd(), moveArgs())
	require.Error(t, err)
	assert.True(t, models.IsTransport(err))
	assert.Equal(t, cli.ExitError, cli.ExitCodeFor(err))

	// the local order is kept
	assert.Equal(t, []string{"x"}, a.Store.CardNames("B"))
}

func TestMove_MissingFlags(t *testing.T) {
	a, _ := clitest.SetupCLITest(t)

	_, err := clitest.ExecuteCLICommand(t, a, MoveCmd(), []string{"--from-list", "0"})
	require.Error(t, err)
}
