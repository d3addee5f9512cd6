package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/showroom/internal/app"
)

func newResetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Show the country selection screen on next launch",
		Long: `Revoke today's confirmation. The stored country and language are kept
and pre-selected when the selection screen appears.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := app.Open(opts.appOptions())
			if err != nil {
				return err
			}
			defer func() { _ = env.Close() }()

			env.Country.SetHasConfirmedSelection(false)
			fmt.Fprintln(cmd.OutOrStdout(), "Selection cleared; the country screen will show on next launch.")
			return nil
		},
	}
}
