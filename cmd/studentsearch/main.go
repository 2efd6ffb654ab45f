package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/studentsearch/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "studentsearch: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:   "studentsearch",
		Short: "Search, filter and add student records in the terminal",
		Long: `studentsearch shows the student roster with a live search box, a branch
filter and a form for adding students. Records live in memory for the
session; nothing is written back to disk.

Run without arguments to start the interactive interface.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/studentsearch/config.toml)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "preferences file (default ~/.config/studentsearch/prefs.toml)")
	flags.StringVar(&opts.EnvFile, "env-file", "", "dotenv file loaded before the config (default ./.env)")
	flags.StringVar(&opts.SeedFile, "seed", "", "YAML file replacing the built-in roster")
	flags.DurationVar(&opts.Debounce, "debounce", 0, "search debounce delay (default from config, 120ms)")
	flags.StringVar(&opts.LogFile, "log-file", "", "log file (default ~/.local/state/studentsearch/studentsearch.log)")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newListCmd(&opts))
	return root
}

func newListCmd(opts *app.Options) *cobra.Command {
	var list app.ListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the roster filtered by query and branch",
		Long: `Prints the records the interactive view would show for the given query and
branch, followed by the count line.

Example:
  studentsearch list --query ami --branch CSE`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.List(*opts, list, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&list.Query, "query", "q", "", "case-insensitive name or roll number substring")
	cmd.Flags().StringVarP(&list.Branch, "branch", "b", "all", "branch filter: all, CSE, ECE or ME")
	return cmd
}
