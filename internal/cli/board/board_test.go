package board

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/termllo/internal/cli"
	"github.com/thenoetrevino/termllo/internal/testutil"
	clitest "github.com/thenoetrevino/termllo/internal/testutil/cli"
)

func TestBoards_Human(t *testing.T) {
	a, _ := clitest.SetupCLITest(t)

	out, err := clitest.ExecuteCLICommand(t, a, BoardsCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, out, "Found 1 boards")
	assert.Contains(t, out, "[0] Work")
	assert.Contains(t, out, "active")
}

func TestBoards_JSON(t *testing.T) {
	a, _ := clitest.SetupCLITest(t)

	out, err := clitest.ExecuteCLICommand(t, a, BoardsCmd(), []string{"--json"})
	require.NoError(t, err)

	result := testutil.ParseJSON(t, out)
	assert.Equal(t, true, result["success"])
	boards := result["data"].([]any)
	require.Len(t, boards, 1)
	assert.Equal(t, "Work", boards[0].(map[string]any)["name"])
}

func TestBoards_Quiet(t *testing.T) {
	a, _ := clitest.SetupCLITest(t)

	out, err := clitest.ExecuteCLICommand(t, a, BoardsCmd(), []string{"--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "b1\n", out)
}

func TestBoards_UsesSnapshot(t *testing.T) {
	a, remote := clitest.SetupCLITest(t)

	_, err := clitest.ExecuteCLICommand(t, a, BoardsCmd(), []string{"--quiet"})
	require.NoError(t, err)
	_, err = clitest.ExecuteCLICommand(t, a, BoardsCmd(), []string{"--quiet"})
	require.NoError(t, err)

	boards, _, _ := remote.FetchCalls()
	assert.Equal(t, 1, boards, "second run reads the snapshot")
}

func TestBoards_RemoteFailure(t *testing.T) {
	a, remote := clitest.SetupCLITest(t)
	remote.SetErr(&remote.GetBoardsErr, errors.New("offline"))

	out, err := clitest.ExecuteCLICommand(t, a, BoardsCmd(), []string{"--json"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitError, cli.ExitCodeFor(err))

	result := testutil.ParseJSON(t, out)
	assert.Equal(t, false, result["success"])
}

func TestCards_Human(t *testing.T) {
	a, _ := clitest.SetupCLITest(t)

	out, err := clitest.ExecuteCLICommand(t, a, CardsCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, out, "Work")
	assert.Contains(t, out, "[0] Todo (2)")
	assert.Contains(t, out, "[1] Done (0)")
	assert.Contains(t, out, "0  x")
	assert.Contains(t, out, "1  y")
}

func TestCards_JSON(t *testing.T) {
	a, _ := clitest.SetupCLITest(t)

	out, err := clitest.ExecuteCLICommand(t, a, CardsCmd(), []string{"--json"})
	require.NoError(t, err)

	result := testutil.ParseJSON(t, out)
	board := result["data"].(map[string]any)
	lists := board["lists"].([]any)
	require.Len(t, lists, 2)
	todo := lists[0].(map[string]any)
	assert.Equal(t, "Todo", todo["name"])
	assert.Len(t, todo["cards"].([]any), 2)
}

func TestCards_Quiet(t *testing.T) {
	a, _ := clitest.SetupCLITest(t)

	out, err := clitest.ExecuteCLICommand(t, a, CardsCmd(), []string{"--quiet"})
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, strings.Fields(out))
}

func TestCards_UnknownBoard(t *testing.T) {
	a, _ := clitest.SetupCLITest(t)

	_, err := clitest.ExecuteCLICommand(t, a, CardsCmd(), []string{"--board", "4"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCodeFor(err))
}
