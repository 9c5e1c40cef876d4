package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cyphera/tax-calculator/internal/client/taxjar"
)

func newCountriesCmd() *cobra.Command {
	var euOnly bool

	cmd := &cobra.Command{
		Use:   "countries",
		Short: "List supported country codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			countries := taxjar.SupportedCountries()
			if euOnly {
				countries = append([]string(nil), taxjar.EUCountries...)
			}

			renderRows(cmd.OutOrStdout(), fmt.Sprintf("Supported countries (%d)", len(countries)), []row{
				{label: "Codes", value: strings.Join(countries, " ")},
			})
			return nil
		},
	}

	cmd.Flags().BoolVar(&euOnly, "eu", false, "only list countries that report the VAT standard rate")
	return cmd
}
