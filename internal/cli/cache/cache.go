// Package cache holds the snapshot cache maintenance commands.
package cache

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/termllo/internal/cli"
	"github.com/thenoetrevino/termllo/internal/cli/styles"
	"github.com/thenoetrevino/termllo/internal/snapshot"
)

// CacheCmd returns the cache parent command
func CacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the snapshot cache",
	}

	cmd.AddCommand(StatusCmd())
	cmd.AddCommand(ClearCmd())

	return cmd
}

// StatusCmd returns the cache status subcommand
func StatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "List cached snapshots with their age",
		Args:  cobra.NoArgs,
		RunE:  runStatus,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

// ClearCmd returns the cache clear subcommand
func ClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every cached snapshot",
		Long: `Delete every cached snapshot. The next start loads everything from Trello.

Examples:
  termllo cache clear
  termllo cache clear --json
`,
		Args: cobra.NoArgs,
		RunE: runClear,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

// errCacheDisabled is reported when the cache is turned off in the config
var errCacheDisabled = &cli.UsageError{Message: "snapshot cache is disabled (cache.disabled or --no-cache)"}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer cli.CloseQuietly(cliInstance)

	if cliInstance.App.Cache == nil {
		return formatter.Fail(errCacheDisabled)
	}

	infos, err := cliInstance.App.Cache.List(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	color := formatter.Color()
	return formatter.Success(infos, func(w io.Writer) error {
		return printStatus(w, infos, color)
	})
}

func printStatus(w io.Writer, infos []snapshot.Info, color bool) error {
	if len(infos) == 0 {
		_, err := fmt.Fprintln(w, "Snapshot cache is empty")
		return err
	}

	fmt.Fprintf(w, "%d snapshots:\n\n", len(infos))
	for _, info := range infos {
		fmt.Fprintf(w, "  %-32s %8s  saved %s", info.Key,
			humanize.Bytes(uint64(info.Size)), humanize.Time(info.SavedAt))
		if info.Expired {
			fmt.Fprintf(w, " %s", styles.Render(styles.ErrorStyle, "expired", color))
		}
		fmt.Fprintln(w)
	}
	return nil
}

// clearOutput is the result printed by cache clear
type clearOutput struct {
	Removed int64 `json:"removed"`
}

func runClear(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer cli.CloseQuietly(cliInstance)

	if cliInstance.App.Cache == nil {
		return formatter.Fail(errCacheDisabled)
	}

	removed, err := cliInstance.App.Cache.Clear(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	out := clearOutput{Removed: removed}
	return formatter.Success(out, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "Removed %d snapshots\n", removed)
		return err
	})
}
