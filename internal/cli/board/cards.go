package board

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/termllo/internal/cli"
	"github.com/thenoetrevino/termllo/internal/cli/styles"
	"github.com/thenoetrevino/termllo/internal/models"
)

// CardsCmd returns the cards command
func CardsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cards",
		Short: "Show the lists and cards of a board",
		Long: `Show every open list of a board with its cards in order.

List and card indexes are the values 'termllo move' expects.

Examples:
  termllo cards
  termllo cards --board 1
  termllo cards --board 1 --json
`,
		Args: cobra.NoArgs,
		RunE: runCards,
	}

	cmd.Flags().Int("board", 0, "Board index from 'termllo boards'")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runCards(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	boardIdx, _ := cmd.Flags().GetInt("board")
	formatter := cli.FormatterFromFlags(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer cli.CloseQuietly(cliInstance)

	if err := cliInstance.App.Loader.Fill(ctx, boardIdx); err != nil {
		return formatter.Fail(err)
	}

	board, ok := cliInstance.App.Store.ActiveBoard()
	if !ok {
		return formatter.Fail(&models.NotFoundError{Kind: "board", ID: fmt.Sprint(boardIdx)})
	}

	if formatter.Quiet {
		for _, l := range board.Lists {
			for _, c := range l.Cards {
				fmt.Fprintln(cmd.OutOrStdout(), c.ID)
			}
		}
		return nil
	}

	color := formatter.Color()
	return formatter.Success(board, func(w io.Writer) error {
		return printBoard(w, board, color)
	})
}

func printBoard(w io.Writer, board models.Board, color bool) error {
	fmt.Fprintln(w, styles.Render(styles.TitleStyle, board.Name, color))

	if len(board.Lists) == 0 {
		_, err := fmt.Fprintln(w, "  No open lists")
		return err
	}

	for i, l := range board.Lists {
		fmt.Fprintf(w, "\n  [%d] %s (%d)\n", i,
			styles.Render(styles.LabelStyle, l.Name, color), len(l.Cards))
		for j, c := range l.Cards {
			fmt.Fprintf(w, "      %d  %s\n", j, styles.Render(styles.ValueStyle, c.Name, color))
		}
	}
	return nil
}
