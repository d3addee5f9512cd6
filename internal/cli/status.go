package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/five82/showroom/internal/app"
)

func newStatusCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the stored country and language",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := app.Open(opts.appOptions())
			if err != nil {
				return err
			}
			defer func() { _ = env.Close() }()

			snap := env.Country.PersistedSnapshot()
			country := "(none)"
			if snap.Country != nil {
				c := snap.Country
				country = fmt.Sprintf("%s %s [%s, %s]", c.Flag, c.Name, c.Phone, c.Currency)
			}
			confirmed := "no"
			if snap.Confirmed {
				confirmed = snap.ConfirmedOn
			}
			gate := "no"
			if env.Country.ShouldShowGate() {
				gate = "yes"
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Country:\t%s\n", country)
			fmt.Fprintf(w, "Language:\t%s %s\n", snap.Language.Flag, snap.Language.Name)
			fmt.Fprintf(w, "Confirmed:\t%s\n", confirmed)
			fmt.Fprintf(w, "Selection screen:\t%s\n", gate)
			fmt.Fprintf(w, "Snapshot:\t%s\n", env.Config.CountryFile)
			return w.Flush()
		},
	}
}
