package cli

import (
	"context"
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/five82/showroom/internal/app"
)

// ErrNoTerminal is returned when the TUI is started without a terminal.
var ErrNoTerminal = errors.New("showroom needs an interactive terminal; use a subcommand such as 'showroom status'")

type rootOptions struct {
	configPath string
	debug      bool
	section    string

	isTerminal func() bool
	runTUI     func(ctx context.Context, opts app.Options) error
}

func (o *rootOptions) appOptions() app.Options {
	return app.Options{ConfigPath: o.configPath, Debug: o.debug, Section: o.section}
}

// NewRootCmd creates the root cobra command. Without a subcommand it runs
// the TUI.
func NewRootCmd(version string) *cobra.Command {
	return newRootCmd(&rootOptions{
		isTerminal: stdioIsTerminal,
		runTUI:     app.Run,
	}, version)
}

func newRootCmd(opts *rootOptions, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "showroom",
		Short: "Browse the Super Tucán lineup from your terminal",
		Long: `Showroom is a terminal catalog for Super Tucán motorcycles.

On the first launch of each day it asks for your country and language,
pre-selecting the country detected from your IP address.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !opts.isTerminal() {
				return ErrNoTerminal
			}
			return opts.runTUI(cmd.Context(), opts.appOptions())
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "override config path (default ~/.config/showroom/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "write debug records to the log file")
	rootCmd.Flags().StringVar(&opts.section, "section", "", "section to open after the selection screen (hero, models, brand, dealers, parts)")

	rootCmd.AddCommand(newDetectCmd(opts))
	rootCmd.AddCommand(newStatusCmd(opts))
	rootCmd.AddCommand(newResetCmd(opts))

	return rootCmd
}

func stdioIsTerminal() bool {
	in, out := os.Stdin.Fd(), os.Stdout.Fd()
	return (isatty.IsTerminal(in) || isatty.IsCygwinTerminal(in)) &&
		(isatty.IsTerminal(out) || isatty.IsCygwinTerminal(out))
}
