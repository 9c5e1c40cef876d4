package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cyphera/tax-calculator/internal/interfaces"
	"github.com/cyphera/tax-calculator/internal/types/business"
)

type servicesFunc func() (interfaces.TaxService, interfaces.QuoteService, error)

// addressFlags binds the five address fields under an optional prefix such as "from-"
type addressFlags struct {
	country string
	state   string
	city    string
	zip     string
	street  string
}

func (a *addressFlags) register(flags *pflag.FlagSet, prefix, description string) {
	flags.StringVar(&a.country, prefix+"country", "", description+" two-letter country code")
	flags.StringVar(&a.state, prefix+"state", "", description+" state or province")
	flags.StringVar(&a.city, prefix+"city", "", description+" city")
	flags.StringVar(&a.zip, prefix+"zip", "", description+" postal code")
	flags.StringVar(&a.street, prefix+"street", "", description+" street address")
}

func (a *addressFlags) empty() bool {
	return a.country == "" && a.state == "" && a.city == "" && a.zip == "" && a.street == ""
}

func (a *addressFlags) address() *business.Address {
	return &business.Address{
		Country:       a.country,
		State:         a.state,
		City:          a.city,
		PostalCode:    a.zip,
		StreetAddress: a.street,
	}
}

func newRateCmd(services servicesFunc) *cobra.Command {
	var address addressFlags

	cmd := &cobra.Command{
		Use:   "rate",
		Short: "Look up the tax rate for an address",
		Long:  "Look up the tax rate for an address. EU countries report the VAT standard rate, all other countries the combined rate.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			taxService, _, err := services()
			if err != nil {
				return err
			}

			rate, err := taxService.GetTaxRate(cmd.Context(), address.address(), nil)
			if err != nil {
				return err
			}

			renderRows(cmd.OutOrStdout(), "Tax rate", []row{
				{label: "Postal code", value: address.zip},
				{label: "Rate", value: rate.String()},
				{label: "Percent", value: formatRate(rate), total: true},
			})
			return nil
		},
	}

	address.register(cmd.Flags(), "", "address")
	return cmd
}
