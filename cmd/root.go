// Package cmd wires the termllo command tree.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/termllo/internal/app"
	"github.com/thenoetrevino/termllo/internal/cli"
	"github.com/thenoetrevino/termllo/internal/cli/board"
	"github.com/thenoetrevino/termllo/internal/cli/cache"
	"github.com/thenoetrevino/termllo/internal/cli/card"
	"github.com/thenoetrevino/termllo/internal/cli/styles"
	"github.com/thenoetrevino/termllo/internal/config"
	"github.com/thenoetrevino/termllo/internal/logging"
	"github.com/thenoetrevino/termllo/internal/tui"
)

// Version is set at build time with -ldflags "-X .../cmd.Version=..."
var Version = "dev"

var (
	// logCloser is the rotated log file opened by the root pre-run
	logCloser io.Closer

	// started is set once setup ran; earlier failures are argument errors
	// that no command has reported yet
	started bool
)

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "termllo",
		Short: "termllo - Trello boards in the terminal",
		Long: `termllo shows your starred Trello boards as columns of cards.

Run without arguments to open the board view. The subcommands give
scriptable access to the same boards.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logCloser != nil {
				_ = logCloser.Close()
			}
		},
		RunE: runTUI,
	}

	rootCmd.PersistentFlags().String("config", "", "Path to the config file")
	rootCmd.PersistentFlags().Bool("no-cache", false, "Skip the snapshot cache")
	rootCmd.PersistentFlags().Bool("debug", false, "Write debug entries to the log file")

	rootCmd.AddCommand(board.BoardsCmd())
	rootCmd.AddCommand(board.CardsCmd())
	rootCmd.AddCommand(card.MoveCmd())
	rootCmd.AddCommand(cache.CacheCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	c, err := NewRootCmd().ExecuteContextC(context.Background())
	if err != nil && !started {
		fmt.Fprintf(c.ErrOrStderr(), "Error: %v\nRun '%s --help' for usage.\n", err, c.CommandPath())
		return &cli.UsageError{Message: err.Error()}
	}
	return err
}

// setup loads the configuration and the log file before any command runs
func setup(cmd *cobra.Command, args []string) error {
	started = true
	formatter := cli.FormatterFromFlags(cmd)
	configPath, _ := cmd.Flags().GetString("config")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	debug, _ := cmd.Flags().GetBool("debug")

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return formatter.Fail(&cli.UsageError{Message: fmt.Sprintf("failed to load config: %v", err)})
	}
	if noCache {
		cfg.Cache.Disabled = true
	}
	styles.Init(cfg.ColorScheme)

	closer, err := logging.Init(logging.Options{Debug: debug})
	if err != nil {
		return formatter.Fail(fmt.Errorf("failed to open log file: %w", err))
	}
	logCloser = closer
	slog.Debug("termllo starting", "version", Version, "command", cmd.Name())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(cli.WithConfig(ctx, cfg))
	return nil
}

// runTUI opens the interactive board view
func runTUI(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := &cli.OutputFormatter{}
	cfg, ok := cli.ConfigFromContext(ctx)
	if !ok {
		return formatter.Fail(cli.ErrNoConfig)
	}

	a, err := app.New(ctx, cfg, app.WithLogger(logging.Logger))
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		if err := a.Close(); err != nil {
			slog.Error("failed to close app", "error", err)
		}
	}()

	p := tea.NewProgram(tui.InitialModel(ctx, a))
	if _, err := p.Run(); err != nil {
		return formatter.Fail(fmt.Errorf("error running program: %w", err))
	}
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the termllo version",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "termllo %s\n", Version)
		},
	}
}
