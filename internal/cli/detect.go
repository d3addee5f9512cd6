package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/showroom/internal/app"
	"github.com/five82/showroom/internal/state"
)

func newDetectCmd(opts *rootOptions) *cobra.Command {
	var confirm bool

	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Detect your country from your IP address",
		Long: `Look up your country once and store it as the selected country.

Unsupported countries select "Otro País"; lookup failures select the
home market. Pass --confirm to also skip today's selection screen.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := app.Open(opts.appOptions())
			if err != nil {
				return err
			}
			defer func() { _ = env.Close() }()

			res := env.Country.DetectCountry(cmd.Context())
			out := cmd.OutOrStdout()
			switch res.Outcome {
			case state.OutcomeDetected:
				fmt.Fprintf(out, "Detected %s %s (%s)\n", res.Country.Flag, res.Country.Name, res.ISOCode)
			case state.OutcomeFellBack:
				fmt.Fprintf(out, "Selected %s %s: %v\n", res.Country.Flag, res.Country.Name, res.Reason)
			default:
				return res.Reason
			}

			if confirm {
				env.Country.SetHasConfirmedSelection(true)
				fmt.Fprintf(out, "Confirmed for %s\n", env.Country.State().LastConfirmationDate)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&confirm, "confirm", false, "confirm the detected country for today")

	return cmd
}
