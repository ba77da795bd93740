// Package card holds the card mutation commands.
package card

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/termllo/internal/cli"
	"github.com/thenoetrevino/termllo/internal/cli/styles"
	cardservice "github.com/thenoetrevino/termllo/internal/services/card"
)

// moveOutput is the result printed by the move command
type moveOutput struct {
	CardID    string  `json:"cardId"`
	CardName  string  `json:"cardName"`
	FromList  string  `json:"fromList"`
	ToList    string  `json:"toList"`
	Index     int     `json:"index"`
	Placement string  `json:"placement"`
	Pos       float64 `json:"pos"`
	RequestID string  `json:"requestId"`
}

// GetID returns the moved card's id
func (m moveOutput) GetID() string {
	return m.CardID
}

// MoveCmd returns the move command
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move a card to another position",
		Long: `Move a card by list and card index, as shown by 'termllo cards'.

The card is removed from --from-list at --from-pos and inserted into
--to-list at --to-pos. A --to-pos past the end of the list appends.

Examples:
  # Move the first card of list 0 to the top of list 1
  termllo move --from-list 0 --from-pos 0 --to-list 1 --to-pos 0

  # Reorder within a list on board 2
  termllo move --board 2 --from-list 0 --from-pos 3 --to-list 0 --to-pos 0

  # JSON output for agents
  termllo move --from-list 0 --from-pos 0 --to-list 1 --to-pos 0 --json
`,
		Args: cobra.NoArgs,
		RunE: runMove,
	}

	cmd.Flags().Int("board", 0, "Board index from 'termllo boards'")
	cmd.Flags().Int("from-list", 0, "Source list index (required)")
	cmd.Flags().Int("from-pos", 0, "Card index in the source list (required)")
	cmd.Flags().Int("to-list", 0, "Destination list index (required)")
	cmd.Flags().Int("to-pos", 0, "Index in the destination list (required)")
	for _, name := range []string{"from-list", "from-pos", "to-list", "to-pos"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			slog.Error("failed to mark flag as required", "flag", name, "error", err)
		}
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	boardIdx, _ := cmd.Flags().GetInt("board")
	fromListIdx, _ := cmd.Flags().GetInt("from-list")
	fromPos, _ := cmd.Flags().GetInt("from-pos")
	toListIdx, _ := cmd.Flags().GetInt("to-list")
	toPos, _ := cmd.Flags().GetInt("to-pos")
	formatter := cli.FormatterFromFlags(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer cli.CloseQuietly(cliInstance)
	a := cliInstance.App

	// positions must be current, so the board is always fetched fresh
	if err := a.Loader.Fill(ctx, boardIdx); err != nil {
		return formatter.Fail(err)
	}
	if err := a.Loader.Refresh(ctx); err != nil {
		return formatter.Fail(err)
	}

	lists := a.Store.Lists()
	from, err := cli.ListAt(lists, fromListIdx)
	if err != nil {
		return formatter.Fail(err)
	}
	to, err := cli.ListAt(lists, toListIdx)
	if err != nil {
		return formatter.Fail(err)
	}

	outcome, err := a.CardService.MoveCard(cardservice.MoveRequest{
		FromList: from.ID,
		FromPos:  fromPos,
		ToList:   to.ID,
		ToPos:    toPos,
	})
	if err != nil {
		return formatter.Fail(err)
	}

	// send now instead of waiting for the debounce window
	if err := a.CardService.Flush(ctx); err != nil {
		return formatter.Fail(err)
	}

	out := moveOutput{
		CardID:    outcome.Card.ID,
		CardName:  outcome.Card.Name,
		FromList:  from.Name,
		ToList:    to.Name,
		Index:     outcome.ToIndex,
		Placement: outcome.Placement.String(),
		RequestID: outcome.RequestID,
	}

	select {
	case result := <-a.CardService.Results():
		if result.Err != nil {
			return formatter.Fail(result.Err)
		}
		out.Pos = result.Pos
	default:
	}

	color := formatter.Color()
	return formatter.Success(out, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%s %q moved from %s to %s (index %d, %s)\n",
			styles.Render(styles.SuccessStyle, "moved", color),
			out.CardName, out.FromList, out.ToList, out.Index, out.Placement)
		return err
	})
}
