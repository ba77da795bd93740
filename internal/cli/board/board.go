// Package board holds the read-only board commands.
package board

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/termllo/internal/cli"
	"github.com/thenoetrevino/termllo/internal/cli/styles"
	"github.com/thenoetrevino/termllo/internal/models"
)

// BoardsCmd returns the boards command
func BoardsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "boards",
		Short: "List starred boards",
		Long: `List your starred boards, most recently viewed first.

The index in brackets is what --board expects in other commands.

Examples:
  termllo boards
  termllo boards --json
  termllo boards --quiet
`,
		Args: cobra.NoArgs,
		RunE: runBoards,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runBoards(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer cli.CloseQuietly(cliInstance)

	boards, err := cliInstance.App.Loader.LoadBoards(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	color := formatter.Color()
	return formatter.Success(boards, func(w io.Writer) error {
		return printBoards(w, boards, color)
	})
}

func printBoards(w io.Writer, boards []models.Board, color bool) error {
	if len(boards) == 0 {
		_, err := fmt.Fprintln(w, "No starred boards found")
		return err
	}

	fmt.Fprintf(w, "Found %d boards:\n\n", len(boards))
	for i, b := range boards {
		fmt.Fprintf(w, "  [%d] %s", i, styles.Render(styles.TitleStyle, b.Name, color))
		if !b.LastModified.IsZero() {
			fmt.Fprintf(w, " %s", styles.Render(styles.SubtitleStyle,
				"active "+humanize.Time(b.LastModified), color))
		}
		fmt.Fprintln(w)
	}
	return nil
}
